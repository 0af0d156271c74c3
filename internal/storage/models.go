package storage

import "time"

// DefaultFolderID is the pseudo-folder every book without an explicit folder
// belongs to. It need not correspond to a persisted Folder record.
const DefaultFolderID = "default"

// Folder groups books for one owner.
type Folder struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Book is a physical book the owner captures snippets from.
type Book struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	ISBN      string    `json:"isbn,omitempty"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	FolderID  string    `json:"folderId"` // never empty in storage; "default" when unassigned
	CreatedAt time.Time `json:"createdAt"`
}

// Snippet is a captured text excerpt from a book.
// BookID is opaque at write time; referential integrity is not enforced.
type Snippet struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	BookID     string    `json:"bookId"`
	Text       string    `json:"text"`
	PageNumber *int      `json:"pageNumber,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
