package service

import (
	"context"
	"sort"

	"github.com/gfdmit/blogdesk/internal/repository"
)

type TicketOverview struct {
	Total          int `json:"total"`
	Open           int `json:"open"`
	InProgress     int `json:"in_progress"`
	Resolved       int `json:"resolved"`
	Closed         int `json:"closed"`
	HighPriority   int `json:"high_priority"`
	UrgentPriority int `json:"urgent_priority"`
	Today          int `json:"today"`
}

type DistributionItem struct {
	Key   string `json:"-"`
	Count int    `json:"count"`
}

type StatusDistributionItem struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PriorityDistributionItem struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

func (svc *Service) TicketOverview(ctx context.Context) (TicketOverview, error) {
	statuses, err := svc.repo.TicketStatusCounts(ctx)
	if err != nil {
		return TicketOverview{}, err
	}
	priorities, err := svc.repo.TicketPriorityCounts(ctx)
	if err != nil {
		return TicketOverview{}, err
	}
	today, err := svc.repo.TicketCountToday(ctx)
	if err != nil {
		return TicketOverview{}, err
	}

	total := 0
	for _, count := range statuses {
		total += count
	}
	return TicketOverview{
		Total:          total,
		Open:           statuses[StatusOpen],
		InProgress:     statuses[StatusInProgress],
		Resolved:       statuses[StatusResolved],
		Closed:         statuses[StatusClosed],
		HighPriority:   priorities[PriorityHigh],
		UrgentPriority: priorities[PriorityUrgent],
		Today:          today,
	}, nil
}

func (svc *Service) TicketTrend(ctx context.Context, days int) ([]repository.TrendPoint, error) {
	if days < 1 {
		days = 30
	}
	return svc.repo.TicketTrend(ctx, days)
}

// CategoryDistribution appends a synthetic "Uncategorized" bucket when any
// tickets have no category.
func (svc *Service) CategoryDistribution(ctx context.Context) ([]repository.CategoryDistribution, error) {
	distribution, err := svc.repo.TicketCategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	uncategorized, err := svc.repo.UncategorizedTicketCount(ctx)
	if err != nil {
		return nil, err
	}
	if uncategorized > 0 {
		distribution = append(distribution, repository.CategoryDistribution{
			CategoryName: "Uncategorized",
			Count:        uncategorized,
		})
	}
	return distribution, nil
}

func sortedCounts(counts map[string]int) []DistributionItem {
	items := make([]DistributionItem, 0, len(counts))
	for key, count := range counts {
		items = append(items, DistributionItem{Key: key, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Key < items[j].Key
	})
	return items
}

func (svc *Service) StatusDistribution(ctx context.Context) ([]StatusDistributionItem, error) {
	counts, err := svc.repo.TicketStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	items := []StatusDistributionItem{}
	for _, item := range sortedCounts(counts) {
		items = append(items, StatusDistributionItem{Status: item.Key, Count: item.Count})
	}
	return items, nil
}

func (svc *Service) PriorityDistribution(ctx context.Context) ([]PriorityDistributionItem, error) {
	counts, err := svc.repo.TicketPriorityCounts(ctx)
	if err != nil {
		return nil, err
	}
	items := []PriorityDistributionItem{}
	for _, item := range sortedCounts(counts) {
		items = append(items, PriorityDistributionItem{Priority: item.Key, Count: item.Count})
	}
	return items, nil
}
