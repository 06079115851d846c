package repository

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is the denormalized read model: relationship names are resolved to
// display values, raw foreign keys kept only where callers need them.
type Post struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	CategoryID *int      `json:"-"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	Date       time.Time `json:"-"`
	AuthorID   *int      `json:"-"`
	Author     string    `json:"author"`
	Views      int       `json:"views"`
	Likes      int       `json:"likes"`
}

type PostInput struct {
	Title      string
	Summary    string
	Content    string
	CategoryID *int
	TagIDs     []int
	AuthorID   int
}

// PostPatch carries partial updates; nil means "leave unchanged".
type PostPatch struct {
	Title      *string
	Summary    *string
	Content    *string
	CategoryID *int
	TagIDs     *[]int
}

type PostFilter struct {
	Page     int
	Size     int
	Search   string
	Category string
	Tag      string
	Date     string
}

type ArchiveEntry struct {
	ID    int
	Title string
	Date  time.Time
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryCount struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TagCount struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Comment struct {
	ID          int       `json:"id"`
	PostID      int       `json:"post_id"`
	ParentID    *int      `json:"parent_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail *string   `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"-"`
	UserID      *int      `json:"-"`
}

type CommentInput struct {
	PostID      int
	ParentID    *int
	AuthorName  string
	AuthorEmail *string
	Content     string
	UserID      *int
}

type SiteInfo struct {
	ID          int    `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ICP         string `json:"icp"`
	Footer      string `json:"footer"`
}

type Menu struct {
	ID    int     `json:"-"`
	Title string  `json:"title"`
	Path  *string `json:"path,omitempty"`
	URL   *string `json:"url,omitempty"`
}

type TicketCategory struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type TicketCategoryCount struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Count       int     `json:"count"`
}

type TicketCategoryPatch struct {
	Name        *string
	Description *string
}

type Ticket struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	CategoryID   *int      `json:"category_id"`
	CategoryName *string   `json:"category_name"`
	UserID       int       `json:"user_id"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TicketInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	CategoryID  *int
	UserID      int
}

type TicketPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	CategoryID  *int
}

type TicketFilter struct {
	Page       int
	Size       int
	Search     string
	Status     string
	Priority   string
	CategoryID int
}

type QuickReply struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  *string   `json:"category"`
	UseCount  int       `json:"use_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuickReplyInput struct {
	Title    string
	Content  string
	Category *string
}

type QuickReplyPatch struct {
	Title    *string
	Content  *string
	Category *string
}

type QuickReplyFilter struct {
	Page     int
	Size     int
	Search   string
	Category string
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CategoryDistribution struct {
	CategoryID   *int   `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}
