package directory

// Модели каталога тенанта из hosted data API
// Имена JSON-полей соответствуют историческому испаноязычному хранилищу

// Professional профессионал (мастер) салона
type Professional struct {
	ID        int64  `json:"id"`
	TenantID  int64  `json:"tenant_id"`
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad"`
	Phone     string `json:"telefono"`
	Level     int    `json:"nivel"` // Уровень доступа 1..3
	Active    bool   `json:"activo"`
	Color     string `json:"color"`
	Avatar    string `json:"avatar"`
}

// Service услуга салона
// Для расчета слотов значима только длительность
type Service struct {
	ID              int64    `json:"id"`
	TenantID        int64    `json:"tenant_id"`
	Name            string   `json:"nombre"`
	DurationMinutes int      `json:"duracion"`
	Price           *float64 `json:"precio"`
	Category        string   `json:"categoria"`
	Active          bool     `json:"activo"`
	Description     string   `json:"descripcion"`
}

// ErrorResponse модель ошибки от data API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
