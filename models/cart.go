package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartLine is a pending purchase item owned by one user. Two lines are the
// same item when title, price, and email all match; the store holds at most
// one line per such triple.
type CartLine struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Identity returns the merge key for the line.
func (l CartLine) Identity() CartIdentity {
	return CartIdentity{Title: l.Title, Price: l.Price, Email: l.Email}
}

// CartIdentity is the composite key used to detect "same item already in cart".
type CartIdentity struct {
	Title string
	Price float64
	Email string
}
