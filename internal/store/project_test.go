// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"districtcms/internal/models"
)

func TestProjectCRUD(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	t.Cleanup(func() {
		cleanTable(t, db, "projects", "slug", "test-crud-project", "test-crud-project-renamed")
	})

	created, err := s.Create(&models.Project{
		Title:       "Test CRUD Project",
		Slug:        "test-crud-project",
		Location:    strPtr("Riyadh"),
		Description: strPtr("A lobby installation."),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("Create did not return a generated ID")
	}
	if created.IsPublished {
		t.Error("new project should default to unpublished")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("FindByID returned nil for existing project")
	}
	if found.Title != "Test CRUD Project" {
		t.Errorf("Title = %q, want %q", found.Title, "Test CRUD Project")
	}
	if found.Location == nil || *found.Location != "Riyadh" {
		t.Errorf("Location = %v, want Riyadh", found.Location)
	}

	found.Title = "Renamed Project"
	found.Slug = "test-crud-project-renamed"
	if err := s.Update(found); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after update: %v", err)
	}
	if updated.Title != "Renamed Project" {
		t.Errorf("Title after update = %q, want %q", updated.Title, "Renamed Project")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("project still found after delete")
	}
}

func TestProjectFindByIDNotFound(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	p, err := s.FindByID(newRandomUUID(t))
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if p != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestProjectPublishFlow(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	t.Cleanup(func() {
		cleanTable(t, db, "projects", "slug", "test-publish-a", "test-publish-b")
	})

	// Deliberately out of insertion order: b sorts before a.
	a, err := s.Create(&models.Project{Title: "Publish A", Slug: "test-publish-a", DisplayOrder: 5})
	if err != nil {
		t.Fatalf("Create a: %v", err)
	}
	b, err := s.Create(&models.Project{Title: "Publish B", Slug: "test-publish-b", DisplayOrder: 2})
	if err != nil {
		t.Fatalf("Create b: %v", err)
	}

	published, err := s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	for _, p := range published {
		if p.ID == a.ID || p.ID == b.ID {
			t.Error("unpublished project appeared in published list")
		}
	}

	if err := s.SetPublished(a.ID, true); err != nil {
		t.Fatalf("SetPublished a: %v", err)
	}
	if err := s.SetPublished(b.ID, true); err != nil {
		t.Fatalf("SetPublished b: %v", err)
	}

	published, err = s.ListPublished()
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	posA, posB := -1, -1
	for i, p := range published {
		if p.ID == a.ID {
			posA = i
		}
		if p.ID == b.ID {
			posB = i
		}
	}
	if posA == -1 || posB == -1 {
		t.Fatal("published projects missing from list")
	}
	if posB > posA {
		t.Errorf("display order not respected: b (order 2) at %d, a (order 5) at %d", posB, posA)
	}

	// Publish toggle must not touch other fields.
	after, _ := s.FindByID(a.ID)
	if after.Title != "Publish A" || after.DisplayOrder != 5 {
		t.Errorf("SetPublished modified other fields: %+v", after)
	}
}
