package domain

// WhatsAppConfig guarda a configuração do canal de notificação.
// A configuração é persistida e editável pelo admin, mas nenhum envio é
// realizado: funcionalidade inacabada herdada do sistema original.
type WhatsAppConfig struct {
	Enabled     bool   `json:"enabled"`
	PhoneNumber string `json:"phoneNumber"`
}

// DefaultWhatsAppConfig é o valor usado quando nada foi persistido ainda.
func DefaultWhatsAppConfig() WhatsAppConfig {
	return WhatsAppConfig{Enabled: true, PhoneNumber: "5511999999999"}
}
