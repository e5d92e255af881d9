package entities

import "go.mongodb.org/mongo-driver/bson"

// Collection names inside store.DatabaseName.
const (
	UsersCollection     = "users"
	MealsCollection     = "meals"
	ReviewsCollection   = "reviews"
	OrdersCollection    = "orders"
	FavoritesCollection = "favorites"
)

// Field names the API filters, sorts or updates on.
const (
	FieldID        = "_id"
	FieldEmail     = "email"
	FieldUserEmail = "userEmail"
	FieldFoodID    = "foodId"
	FieldChefID    = "chefId"
	FieldDate      = "date"
	FieldStatus    = "status"
	FieldRole      = "role"
)

// Document is a user, meal, review, order or favorite. The collections carry no
// schema: whatever the client submits is stored as is.
type Document = bson.M

// Sanitize drops the client supplied identifier so the store always assigns
// one and updates never try to rewrite it.
func Sanitize(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	delete(doc, FieldID)
	return doc
}
