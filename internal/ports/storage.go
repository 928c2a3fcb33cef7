package ports

// KeyValueStore — контракт персистентного хранилища (аналог localStorage).
// Используется только CartStore. Ошибки записи для вызывающего кода
// некритичны: состояние в памяти остаётся авторитетным.
type KeyValueStore interface {
	// Save — сохранить значение по ключу (перезаписывает существующее).
	Save(key string, value []byte) error

	// Load — вернуть значение по ключу; (nil, false, nil) если ключа нет.
	Load(key string) ([]byte, bool, error)

	// Remove — удалить ключ; отсутствие ключа не ошибка.
	Remove(key string) error
}
