package service_test

import (
	"context"
	"testing"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTicket(t *testing.T, svc *service.Service, userID int, in repository.TicketInput) repository.Ticket {
	t.Helper()
	in.UserID = userID
	if in.Title == "" {
		in.Title = "ticket"
	}
	if in.Description == "" {
		in.Description = "something is broken"
	}
	ticket, err := svc.CreateTicket(context.Background(), in)
	require.NoError(t, err)
	return ticket
}

func TestCreateTicketDefaults(t *testing.T) {
	svc, _ := newTestService(t)
	alice := registerUser(t, svc, "alice")

	ticket := createTicket(t, svc, alice.ID, repository.TicketInput{})
	assert.Equal(t, service.StatusOpen, ticket.Status)
	assert.Equal(t, service.PriorityMedium, ticket.Priority)
	assert.Equal(t, "alice", ticket.Username)
	assert.Nil(t, ticket.CategoryID)
}

func TestCreateTicketValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	_, err := svc.CreateTicket(ctx, repository.TicketInput{
		Title: "x", Description: "y", Status: "bogus", UserID: alice.ID,
	})
	assert.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.CreateTicket(ctx, repository.TicketInput{
		Title: "x", Description: "y", Priority: "mild", UserID: alice.ID,
	})
	assert.ErrorIs(t, err, service.ErrInvalid)

	missing := 999
	_, err = svc.CreateTicket(ctx, repository.TicketInput{
		Title: "x", Description: "y", CategoryID: &missing, UserID: alice.ID,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateTicket(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	ticket := createTicket(t, svc, alice.ID, repository.TicketInput{})

	resolved := service.StatusResolved
	updated, err := svc.UpdateTicket(ctx, ticket.ID, repository.TicketPatch{Status: &resolved})
	require.NoError(t, err)
	assert.Equal(t, service.StatusResolved, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(ticket.UpdatedAt))

	bogus := "bogus"
	_, err = svc.UpdateTicket(ctx, ticket.ID, repository.TicketPatch{Status: &bogus})
	assert.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.UpdateTicket(ctx, 999, repository.TicketPatch{Status: &resolved})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListTicketsFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	category, err := svc.CreateTicketCategory(ctx, "billing", nil)
	require.NoError(t, err)

	createTicket(t, svc, alice.ID, repository.TicketInput{
		Title: "invoice wrong", Status: service.StatusOpen, CategoryID: &category.ID,
	})
	createTicket(t, svc, alice.ID, repository.TicketInput{
		Title: "login broken", Status: service.StatusResolved, Priority: service.PriorityUrgent,
	})

	open, total, err := svc.ListTickets(ctx, repository.TicketFilter{Status: service.StatusOpen})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, open, 1)
	assert.Equal(t, "invoice wrong", open[0].Title)

	urgent, total, err := svc.ListTickets(ctx, repository.TicketFilter{Priority: service.PriorityUrgent})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, urgent, 1)

	byCategory, total, err := svc.ListTickets(ctx, repository.TicketFilter{CategoryID: category.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, byCategory, 1)

	_, _, err = svc.ListTickets(ctx, repository.TicketFilter{Status: "bogus"})
	assert.ErrorIs(t, err, service.ErrInvalid)
}

func TestTicketCategoryLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	category, err := svc.CreateTicketCategory(ctx, "billing", nil)
	require.NoError(t, err)

	_, err = svc.CreateTicketCategory(ctx, "billing", nil)
	assert.ErrorIs(t, err, service.ErrConflict)

	description := "payments and invoices"
	updated, err := svc.UpdateTicketCategory(ctx, category.ID, repository.TicketCategoryPatch{
		Description: &description,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, description, *updated.Description)

	createTicket(t, svc, alice.ID, repository.TicketInput{CategoryID: &category.ID})
	assert.ErrorIs(t, svc.DeleteTicketCategory(ctx, category.ID), service.ErrInUse)
}
