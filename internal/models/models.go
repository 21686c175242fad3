// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct field tags (the backtick strings like `gorm:"..."`) tell GORM how to handle
// each field: its column type and constraints.
//
// The data model is a single table, players, which this service only ever reads.
// Rows are created and changed by other processes or by hand in the database.
package models

// Player is one row of the players table.
// Player values live only for the length of a request: they are loaded from a query
// result, mapped to a response, and then thrown away.
type Player struct {
	ID   int    `gorm:"primaryKey"`                // Integer primary key assigned by the database
	Name string `gorm:"type:varchar(255);not null"` // Display name; the column is NOT NULL
}

// TableName pins the table name so it never depends on GORM's pluralization rules.
func (Player) TableName() string {
	return "players"
}
