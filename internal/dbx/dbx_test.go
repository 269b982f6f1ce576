package dbx

import "database/sql"

// Compile-time guarantees for the two handle types repositories receive.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
