package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// DBContextKey holds the *gorm.DB (pool or per-request transaction) in context.
const DBContextKey = contextKey("db")
