package store

import "database/sql"

// Store holds all sub-stores used by the application.
type Store struct {
	DB         *sql.DB
	Properties PropertyStore
	Search     SearchStore
	Facets     FacetStore
	Clients    ClientStore
	Viewings   ViewingStore
	Inquiries  InquiryStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:         db,
		Properties: NewSQLitePropertyStore(db),
		Search:     NewSQLiteSearchStore(db),
		Facets:     NewSQLiteFacetStore(db),
		Clients:    NewSQLiteClientStore(db),
		Viewings:   NewSQLiteViewingStore(db),
		Inquiries:  NewSQLiteInquiryStore(db),
	}
}
