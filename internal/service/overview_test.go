package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/gfdmit/blogdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketOverview(t *testing.T) {
	svc, _ := newTestService(t)
	alice := registerUser(t, svc, "alice")

	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusOpen})
	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusOpen, Priority: service.PriorityUrgent})
	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusResolved, Priority: service.PriorityHigh})

	overview, err := svc.TicketOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, overview.Total)
	assert.Equal(t, 2, overview.Open)
	assert.Equal(t, 1, overview.Resolved)
	assert.Equal(t, 0, overview.Closed)
	assert.Equal(t, 1, overview.HighPriority)
	assert.Equal(t, 1, overview.UrgentPriority)
	assert.Equal(t, 3, overview.Today)
}

func TestTicketTrend(t *testing.T) {
	svc, store := newTestService(t)
	alice := registerUser(t, svc, "alice")

	recent := createTicket(t, svc, alice.ID, repository.TicketInput{})
	createTicket(t, svc, alice.ID, repository.TicketInput{})
	stale := createTicket(t, svc, alice.ID, repository.TicketInput{})
	store.SetTicketCreatedAt(recent.ID, time.Now().AddDate(0, 0, -2))
	store.SetTicketCreatedAt(stale.ID, time.Now().AddDate(0, 0, -90))

	trend, err := svc.TicketTrend(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	// points are date-ascending and exclude anything older than the window
	assert.True(t, trend[0].Date < trend[1].Date)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, 1, trend[1].Count)
}

func TestCategoryDistribution(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")

	billing, err := svc.CreateTicketCategory(ctx, "billing", nil)
	require.NoError(t, err)
	_, err = svc.CreateTicketCategory(ctx, "technical", nil)
	require.NoError(t, err)

	createTicket(t, svc, alice.ID, repository.TicketInput{CategoryID: &billing.ID})
	createTicket(t, svc, alice.ID, repository.TicketInput{CategoryID: &billing.ID})
	createTicket(t, svc, alice.ID, repository.TicketInput{})

	distribution, err := svc.CategoryDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, distribution, 3)
	assert.Equal(t, "billing", distribution[0].CategoryName)
	assert.Equal(t, 2, distribution[0].Count)
	assert.Equal(t, "technical", distribution[1].CategoryName)
	assert.Equal(t, 0, distribution[1].Count)
	assert.Equal(t, "Uncategorized", distribution[2].CategoryName)
	assert.Equal(t, 1, distribution[2].Count)
	assert.Nil(t, distribution[2].CategoryID)
}

func TestStatusAndPriorityDistribution(t *testing.T) {
	svc, _ := newTestService(t)
	alice := registerUser(t, svc, "alice")

	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusOpen})
	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusOpen})
	createTicket(t, svc, alice.ID, repository.TicketInput{Status: service.StatusClosed, Priority: service.PriorityLow})

	statuses, err := svc.StatusDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, service.StatusOpen, statuses[0].Status)
	assert.Equal(t, 2, statuses[0].Count)

	priorities, err := svc.PriorityDistribution(context.Background())
	require.NoError(t, err)
	require.Len(t, priorities, 2)
	assert.Equal(t, service.PriorityMedium, priorities[0].Priority)
	assert.Equal(t, 2, priorities[0].Count)
}
