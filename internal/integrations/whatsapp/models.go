package whatsapp

// Notification исходящее WhatsApp-сообщение
type Notification struct {
	To      string `json:"to"`      // Номер в международном формате
	Message string `json:"message"` // Текст сообщения
}
