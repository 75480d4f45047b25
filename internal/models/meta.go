package models

// NoteMeta метаданные синхронизации заметки.
// Создаются неявно при первом обращении (Dirty=false).
type NoteMeta struct {
	BaseEtag string `json:"baseEtag"` // BaseEtag тег последней подтвержденной удаленной записи
	BaseBody string `json:"baseBody"` // BaseBody тело, принятое удаленным хранилищем
	Dirty    bool   `json:"dirty"`    // Dirty локальные изменения не подтверждены удаленно
}
