package paymentRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB. It holds the
// bookings collection as well so reconciliation can update both documents in
// one session.
type MongoPaymentRepo struct {
	paymentColl *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository backed by the payments
// and bookings collections.
func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &MongoPaymentRepo{
		paymentColl: db.Collection("payments"),
		bookingColl: db.Collection("bookings"),
	}
}

// Insert appends a payment record.
func (r *MongoPaymentRepo) Insert(payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.paymentColl.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// UpdateStatus stamps the reconciliation outcome on an already-inserted
// payment. Status is the only field that changes after insert.
func (r *MongoPaymentRepo) UpdateStatus(paymentID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.paymentColl.UpdateOne(ctx,
		bson.M{"id": paymentID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("payment with id %s not found", paymentID)
	}
	return nil
}

// ReconcileTransactionally inserts the payment and flips the referenced
// booking to paid in a single transaction, so a crash between the two writes
// cannot leave a payment whose booking is unpaid.
func (r *MongoPaymentRepo) ReconcileTransactionally(ctx context.Context, payment *models.Payment) error {
	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		filter := bson.M{"id": payment.BookingID}
		update := bson.M{"$set": bson.M{
			"paid":            true,
			"transactionId":   payment.TransactionID,
			"reconcileStatus": models.ReconcileConfirmed,
		}}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", payment.BookingID)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			if isTransactionsUnsupported(err) {
				return ErrTransactionsUnsupported
			}
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			if isTransactionsUnsupported(err) {
				return ErrTransactionsUnsupported
			}
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrTransactionsUnsupported {
			return err
		}
		return fmt.Errorf("payment reconciliation transaction failed: %w", err)
	}

	return nil
}

// isTransactionsUnsupported matches the server error raised by standalone
// deployments, which only allow transaction numbers on replica sets.
func isTransactionsUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Transaction numbers are only allowed") ||
		strings.Contains(msg, "IllegalOperation")
}
