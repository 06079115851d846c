package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) TicketStatusCounts(ctx context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{}
	for _, rec := range s.tickets {
		counts[rec.status]++
	}
	return counts, nil
}

func (s *Store) TicketPriorityCounts(ctx context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int{}
	for _, rec := range s.tickets {
		counts[rec.priority]++
	}
	return counts, nil
}

func (s *Store) TicketCountToday(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := dateOnly(time.Now())
	count := 0
	for _, rec := range s.tickets {
		if dateOnly(rec.createdAt) == today {
			count++
		}
	}
	return count, nil
}

func (s *Store) TicketTrend(ctx context.Context, days int) ([]repository.TrendPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().AddDate(0, 0, -days)
	byDay := map[string]int{}
	for _, rec := range s.tickets {
		if rec.createdAt.Before(cutoff) {
			continue
		}
		byDay[dateOnly(rec.createdAt)]++
	}

	trend := []repository.TrendPoint{}
	for day, count := range byDay {
		trend = append(trend, repository.TrendPoint{Date: day, Count: count})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend, nil
}

func (s *Store) TicketCategoryDistribution(ctx context.Context) ([]repository.CategoryDistribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	distribution := []repository.CategoryDistribution{}
	for _, c := range s.ticketCategories {
		categoryID := c.ID
		distribution = append(distribution, repository.CategoryDistribution{
			CategoryID:   &categoryID,
			CategoryName: c.Name,
			Count:        s.ticketCountByCategory(c.ID),
		})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return *distribution[i].CategoryID < *distribution[j].CategoryID
	})
	return distribution, nil
}

func (s *Store) UncategorizedTicketCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, rec := range s.tickets {
		if rec.categoryID == nil {
			count++
		}
	}
	return count, nil
}
