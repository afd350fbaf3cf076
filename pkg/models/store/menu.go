package store

// MenuItem is the document persisted in the menu collection.
type MenuItem struct {
	ID        string  `bson:"_id"`
	UserID    string  `bson:"user_id"`
	Name      string  `bson:"name"`
	BasePrice float64 `bson:"base_price"`
	Category  string  `bson:"category"`
	Available bool    `bson:"available"`
}
