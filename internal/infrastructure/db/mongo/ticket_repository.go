package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodytravelers/booking/internal/core/domain"
)

const ticketCollection = "tickets"

type MongoTicketRepository struct {
	coll *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) *MongoTicketRepository {
	return &MongoTicketRepository{coll: db.Collection(ticketCollection)}
}

type ticketDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Reference   string             `bson:"reference"`
	Destination string             `bson:"destination"`
	TravelDate  time.Time          `bson:"travel_date"`
	Seats       int                `bson:"seats"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *ticketDoc) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Reference:   d.Reference,
		Destination: d.Destination,
		TravelDate:  d.TravelDate,
		Seats:       d.Seats,
		Status:      domain.TicketStatus(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

func (r *MongoTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	doc := ticketDoc{
		UserID:      ticket.UserID,
		Reference:   ticket.Reference,
		Destination: ticket.Destination,
		TravelDate:  ticket.TravelDate,
		Seats:       ticket.Seats,
		Status:      string(ticket.Status),
		CreatedAt:   ticket.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert ticket: %w", err)
	}

	created := *ticket
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoTicketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTicketNotFound
	}

	var doc ticketDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("find ticket: %w", err)
	}

	ticket := doc.toDomain()
	return &ticket, nil
}

func (r *MongoTicketRepository) FindByOwner(ctx context.Context, userID string) ([]domain.Ticket, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer cur.Close(ctx)

	tickets := []domain.Ticket{}
	for cur.Next(ctx) {
		var doc ticketDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode ticket: %w", err)
		}
		tickets = append(tickets, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}

func (r *MongoTicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTicketNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update ticket status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTicketNotFound
	}
	return nil
}
