package source

// RawRecord сырая запись бронирования из внешнего источника.
// Все поля свободный текст, как их отдает таблица; валидация и очистка
// выполняются на уровне сервиса, а не клиента.
type RawRecord struct {
	Room     string `json:"room"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
}
