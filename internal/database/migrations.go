package database

// migrations is an ordered list of SQL migration groups. Each entry is a
// slice of statements executed together in one transaction; the version is
// the 1-based index into this slice.
//
// Timestamps are stored as UTC text in millisecond RFC 3339 form, so
// lexicographic comparison equals chronological comparison.
var migrations = [][]string{
	// Migration 1: core listings tables.
	{
		`CREATE TABLE properties (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			price REAL NOT NULL,
			bedrooms INTEGER NOT NULL DEFAULT 0,
			bathrooms INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Available',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_properties_status_created ON properties(status, created_at)`,
		`CREATE INDEX idx_properties_city ON properties(city)`,
		`CREATE INDEX idx_properties_type ON properties(type)`,
		`CREATE INDEX idx_properties_price ON properties(price)`,

		`CREATE TABLE property_amenities (
			property_id TEXT NOT NULL,
			amenity TEXT NOT NULL,
			PRIMARY KEY (property_id, amenity),
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX idx_property_amenities_amenity ON property_amenities(amenity)`,

		`CREATE TABLE property_images (
			property_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			url TEXT NOT NULL,
			PRIMARY KEY (property_id, position),
			FOREIGN KEY (property_id) REFERENCES properties(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE clients (
			id TEXT PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		// Viewings and inquiries reference clients and properties without
		// foreign key constraints: historical data contains references to
		// records that were deleted later, and the offline maintenance tool
		// is what reconciles them.
		`CREATE TABLE viewings (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			client_id TEXT NOT NULL,
			viewing_date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Scheduled',
			notes TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_viewings_date ON viewings(viewing_date)`,
		`CREATE INDEX idx_viewings_client ON viewings(client_id)`,

		`CREATE TABLE inquiries (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			client_name TEXT NOT NULL DEFAULT '',
			client_email TEXT NOT NULL DEFAULT '',
			client_phone TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'New',
			submitted_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_inquiries_property ON inquiries(property_id)`,
	},
}
