package models

// Todo представляет элемент списка задач.
// Список задач синхронизируется целиком, без отслеживания изменений по элементам.
type Todo struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Created int64  `json:"created"`
	Done    bool   `json:"done"`
}
