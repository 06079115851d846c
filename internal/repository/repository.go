package repository

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert or rename hits a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)

type Repository interface {
	// users
	CreateUser(ctx context.Context, username, passwordHash string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UserByID(ctx context.Context, id int) (User, error)

	// posts
	ListPosts(ctx context.Context, f PostFilter) ([]Post, int, error)
	PostByID(ctx context.Context, id int) (Post, error)
	CreatePost(ctx context.Context, in PostInput) (Post, error)
	UpdatePost(ctx context.Context, id int, patch PostPatch) (Post, error)
	DeletePost(ctx context.Context, id int) error
	IncrementViews(ctx context.Context, id int) error
	IncrementLikes(ctx context.Context, id int) error
	ArchiveEntries(ctx context.Context) ([]ArchiveEntry, error)

	// categories
	ListCategories(ctx context.Context) ([]CategoryCount, error)
	CategoryByID(ctx context.Context, id int) (Category, error)
	CategoryByName(ctx context.Context, name string) (Category, error)
	CreateCategory(ctx context.Context, name string) (Category, error)
	UpdateCategory(ctx context.Context, id int, name string) (Category, error)
	DeleteCategory(ctx context.Context, id int) error
	PostCountByCategory(ctx context.Context, id int) (int, error)

	// tags
	ListTags(ctx context.Context) ([]TagCount, error)
	TagByID(ctx context.Context, id int) (Tag, error)
	TagByName(ctx context.Context, name string) (Tag, error)
	TagsByIDs(ctx context.Context, ids []int) ([]Tag, error)
	CreateTag(ctx context.Context, name string) (Tag, error)
	UpdateTag(ctx context.Context, id int, name string) (Tag, error)
	DeleteTag(ctx context.Context, id int) error
	PostCountByTag(ctx context.Context, id int) (int, error)

	// comments
	CommentsByPost(ctx context.Context, postID int) ([]Comment, error)
	CommentByID(ctx context.Context, id int) (Comment, error)
	CreateComment(ctx context.Context, in CommentInput) (Comment, error)
	DeleteComment(ctx context.Context, id int) error

	// site
	SiteInfo(ctx context.Context) (SiteInfo, error)
	Menus(ctx context.Context) ([]Menu, error)

	// ticket categories
	ListTicketCategories(ctx context.Context) ([]TicketCategoryCount, error)
	TicketCategoryByID(ctx context.Context, id int) (TicketCategory, error)
	TicketCategoryByName(ctx context.Context, name string) (TicketCategory, error)
	CreateTicketCategory(ctx context.Context, name string, description *string) (TicketCategory, error)
	UpdateTicketCategory(ctx context.Context, id int, patch TicketCategoryPatch) (TicketCategory, error)
	DeleteTicketCategory(ctx context.Context, id int) error
	TicketCountByCategory(ctx context.Context, id int) (int, error)

	// tickets
	ListTickets(ctx context.Context, f TicketFilter) ([]Ticket, int, error)
	TicketByID(ctx context.Context, id int) (Ticket, error)
	CreateTicket(ctx context.Context, in TicketInput) (Ticket, error)
	UpdateTicket(ctx context.Context, id int, patch TicketPatch) (Ticket, error)
	DeleteTicket(ctx context.Context, id int) error

	// quick replies
	ListQuickReplies(ctx context.Context, f QuickReplyFilter) ([]QuickReply, int, error)
	QuickReplyByID(ctx context.Context, id int) (QuickReply, error)
	CreateQuickReply(ctx context.Context, in QuickReplyInput) (QuickReply, error)
	UpdateQuickReply(ctx context.Context, id int, patch QuickReplyPatch) (QuickReply, error)
	DeleteQuickReply(ctx context.Context, id int) error
	IncrementQuickReplyUse(ctx context.Context, id int) error

	// overview
	TicketStatusCounts(ctx context.Context) (map[string]int, error)
	TicketPriorityCounts(ctx context.Context) (map[string]int, error)
	TicketCountToday(ctx context.Context) (int, error)
	TicketTrend(ctx context.Context, days int) ([]TrendPoint, error)
	TicketCategoryDistribution(ctx context.Context) ([]CategoryDistribution, error)
	UncategorizedTicketCount(ctx context.Context) (int, error)
}
