package types

// ContextKey - тип ключей для передачи значений через контекст команд
type ContextKey string

// ClientAppKey - ключ, под которым приложение лежит в контексте команды
const ClientAppKey ContextKey = "clientApp"
