// Package model defines the typed records held in the recruitment agency
// tables.
//
// Every record carries a string ID that is unique within its table. Fields
// that name records in other tables (AgentID, InvoiceID, VacancyID, ...) are
// soft references: nothing enforces that the named row exists, and callers
// must treat a missing target as an ordinary "not found" outcome.
//
// Status fields are the only lifecycle signal a record has. There is no
// hidden state machine; any status may be written over any other.
//
// JSON field names are the wire names used in the durable snapshot and must
// match the column names declared in internal/store.
package model
