package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/util"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "splitsphere-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateUser and GetUserByUserID", func(t *testing.T) {
		user := models.NewUser("alice", "Alice", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByUserID(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUserID failed: %v", err)
		}
		if got == nil {
			t.Fatal("Expected user, got nil")
		}
		if got.UserID != "alice" || got.AccountName != "Alice" {
			t.Errorf("User mismatch: got %+v", got)
		}
		if got.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("duplicate UserID rejected", func(t *testing.T) {
		dup := models.NewUser("alice", "Another Alice", "hash2")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("Expected error for duplicate user_id, got nil")
		}
	})

	t.Run("GetUserByUserID returns nil for unknown user", func(t *testing.T) {
		got, err := store.GetUserByUserID(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetUserByUserID failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("GetUsersByUserIDs omits missing users", func(t *testing.T) {
		bob := models.NewUser("bob", "Bob", "hash")
		if err := store.CreateUser(ctx, bob); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		users, err := store.GetUsersByUserIDs(ctx, []string{"alice", "bob", "nobody"})
		if err != nil {
			t.Fatalf("GetUsersByUserIDs failed: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("Expected 2 users, got %d", len(users))
		}
		if users["bob"].AccountName != "Bob" {
			t.Errorf("Bob mismatch: got %+v", users["bob"])
		}
	})

	t.Run("CreateGroup generates ID and stores members", func(t *testing.T) {
		group := &models.Group{
			Name:      "Roommates",
			CreatorID: "alice",
			Members:   []string{"alice", "bob"},
		}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != "Roommates" || got.CreatorID != "alice" {
			t.Errorf("Group mismatch: got %+v", got)
		}
		if got.Closed {
			t.Error("New group should not be closed")
		}
		if len(got.Members) != 2 {
			t.Errorf("Members count mismatch: got %d, want 2", len(got.Members))
		}
	})

	t.Run("AddGroupMember and ListGroupsByMember", func(t *testing.T) {
		carol := models.NewUser("carol", "Carol", "hash")
		if err := store.CreateUser(ctx, carol); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		group := &models.Group{Name: "Trip", CreatorID: "alice", Members: []string{"alice"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if err := store.AddGroupMember(ctx, group.ID, "carol"); err != nil {
			t.Fatalf("AddGroupMember failed: %v", err)
		}

		groups, err := store.ListGroupsByMember(ctx, "carol")
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("Expected carol in exactly group %s, got %d groups", group.ID, len(groups))
		}
		if !groups[0].HasMember("carol") {
			t.Error("Expected carol in member set")
		}
	})

	t.Run("CloseGroup", func(t *testing.T) {
		group := &models.Group{Name: "Done", CreatorID: "alice", Members: []string{"alice"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if err := store.CloseGroup(ctx, group.ID); err != nil {
			t.Fatalf("CloseGroup failed: %v", err)
		}

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if !got.Closed {
			t.Error("Expected group to be closed")
		}
	})

	t.Run("Expense round trip preserves exact amount", func(t *testing.T) {
		group := &models.Group{Name: "Dinner", CreatorID: "alice", Members: []string{"alice", "bob"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		expense := &models.Expense{
			GroupID:        group.ID,
			Description:    "Pizza",
			Amount:         decimal.RequireFromString("100.01"),
			PayerID:        "alice",
			ParticipantIDs: []string{"alice", "bob"},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" || expense.CreatedAt == 0 {
			t.Error("Expected ID and CreatedAt to be generated")
		}

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("Expected 1 expense, got %d", len(expenses))
		}
		got := expenses[0]
		if !got.Amount.Equal(decimal.RequireFromString("100.01")) {
			t.Errorf("Amount mismatch: got %s, want 100.01", got.Amount)
		}
		if got.PayerID != "alice" || len(got.ParticipantIDs) != 2 {
			t.Errorf("Expense mismatch: got %+v", got)
		}
	})

	t.Run("Settlement round trip with optional note", func(t *testing.T) {
		group := &models.Group{Name: "Settle", CreatorID: "alice", Members: []string{"alice", "bob"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		withNote := &models.Settlement{
			GroupID: group.ID,
			PayerID: "bob",
			PayeeID: "alice",
			Amount:  decimal.RequireFromString("25.50"),
			Note:    "venmo",
		}
		if err := store.CreateSettlement(ctx, withNote); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		noNote := &models.Settlement{
			GroupID: group.ID,
			PayerID: "bob",
			PayeeID: "alice",
			Amount:  decimal.RequireFromString("1.00"),
		}
		if err := store.CreateSettlement(ctx, noNote); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		settlements, err := store.ListSettlementsByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByGroup failed: %v", err)
		}
		if len(settlements) != 2 {
			t.Fatalf("Expected 2 settlements, got %d", len(settlements))
		}
		for _, s := range settlements {
			if s.ID == withNote.ID {
				if s.Note != "venmo" {
					t.Errorf("Note mismatch: got %q", s.Note)
				}
				if !s.Amount.Equal(decimal.RequireFromString("25.50")) {
					t.Errorf("Amount mismatch: got %s", s.Amount)
				}
			}
			if s.ID == noNote.ID && s.Note != "" {
				t.Errorf("Expected empty note, got %q", s.Note)
			}
		}
	})

	t.Run("GetGroup returns ErrNotFound for nonexistent group", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if err == nil {
			t.Fatal("Expected error for nonexistent group, got nil")
		}
		if !errors.Is(err, util.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CloseGroup returns ErrNotFound for nonexistent group", func(t *testing.T) {
		err := store.CloseGroup(ctx, "nonexistent-id")
		if !errors.Is(err, util.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
