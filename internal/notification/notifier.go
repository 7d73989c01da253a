package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/pawnecta/petsitting-backend/internal/application"
	"github.com/pawnecta/petsitting-backend/internal/booking"
)

// Notifier translates domain events into inbox notifications. It satisfies
// booking.Notifier and application.Notifier. Failures are logged and
// swallowed; a missed notification never fails the triggering operation.
type Notifier struct {
	service Service
}

func NewNotifier(service Service) *Notifier {
	return &Notifier{service: service}
}

func (n *Notifier) create(ctx context.Context, req CreateRequest) {
	if _, err := n.service.Create(ctx, req); err != nil {
		log.Printf("create notification for user %s failed: %v", req.UserID, err)
	}
}

func bookingLink(id string) *string {
	link := "/bookings/" + id
	return &link
}

func (n *Notifier) BookingClaimed(ctx context.Context, b *booking.Booking) {
	sitterName := "A sitter"
	if b.SitterName != nil {
		sitterName = *b.SitterName
	}
	n.create(ctx, CreateRequest{
		UserID:  b.ClientID,
		Type:    TypeAcceptance,
		Title:   "Sitter assigned",
		Message: fmt.Sprintf("%s took your %s request starting %s.", sitterName, b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}

func (n *Notifier) BookingConfirmed(ctx context.Context, b *booking.Booking) {
	n.create(ctx, CreateRequest{
		UserID:  b.ClientID,
		Type:    TypeAcceptance,
		Title:   "Booking confirmed",
		Message: fmt.Sprintf("Your %s booking starting %s has been confirmed.", b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}

func (n *Notifier) BookingCancelled(ctx context.Context, b *booking.Booking) {
	if b.SitterID == nil {
		return
	}
	n.create(ctx, CreateRequest{
		UserID:  *b.SitterID,
		Type:    TypeSystem,
		Title:   "Booking cancelled",
		Message: fmt.Sprintf("The %s booking starting %s was cancelled by the client.", b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}

func (n *Notifier) ApplicationReceived(ctx context.Context, a *application.Application, b *booking.Booking) {
	n.create(ctx, CreateRequest{
		UserID:  b.ClientID,
		Type:    TypeApplication,
		Title:   "New application",
		Message: fmt.Sprintf("A sitter applied to your %s request starting %s.", b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}

func (n *Notifier) ApplicationAccepted(ctx context.Context, a *application.Application, b *booking.Booking) {
	n.create(ctx, CreateRequest{
		UserID:  a.SitterID,
		Type:    TypeAcceptance,
		Title:   "Application accepted",
		Message: fmt.Sprintf("Your application for the %s booking starting %s was accepted.", b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}

func (n *Notifier) ApplicationRejected(ctx context.Context, a *application.Application, b *booking.Booking) {
	n.create(ctx, CreateRequest{
		UserID:  a.SitterID,
		Type:    TypeSystem,
		Title:   "Application declined",
		Message: fmt.Sprintf("Your application for the %s booking starting %s was declined.", b.Service, b.StartDate.Format("2006-01-02")),
		Link:    bookingLink(b.ID),
	})
}
