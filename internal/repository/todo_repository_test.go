package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EliasSirvio/todo-backend-go/internal/config"
	"github.com/EliasSirvio/todo-backend-go/internal/models"
)

func tagNames(tags []*models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func TestTodoCreateExtractsTags(t *testing.T) {
	todos, _ := newTestRepos(t)

	todo, err := todos.Create("Buy milk #shopping #urgent", false, nil)
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.Nil(t, todo.Order)
	assert.ElementsMatch(t, []string{"shopping", "urgent"}, tagNames(todo.Tags))
}

func TestTodoCreateReusesExistingTag(t *testing.T) {
	todos, tags := newTestRepos(t)

	first, err := todos.Create("Buy milk #shopping", false, nil)
	require.NoError(t, err)
	second, err := todos.Create("Buy bread #shopping", false, nil)
	require.NoError(t, err)

	all, err := tags.List()
	require.NoError(t, err)
	require.Len(t, all, 1, "the shared tag must exist exactly once")
	assert.Equal(t, "shopping", all[0].Name)

	linked, err := tags.ListTodos(all[0].ID)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]uint{first.ID, second.ID},
		[]uint{linked[0].ID, linked[1].ID},
	)
}

func TestTodoCreateDuplicateTagInTitle(t *testing.T) {
	todos, _ := newTestRepos(t)

	todo, err := todos.Create("Call mom #family #family", false, nil)
	require.NoError(t, err)

	assert.Equal(t, "Call mom", todo.Title)
	require.Len(t, todo.Tags, 1)
	assert.Equal(t, "family", todo.Tags[0].Name)
}

func TestTodoCreateWithClientOrder(t *testing.T) {
	todos, _ := newTestRepos(t)

	order := int64(7)
	todo, err := todos.Create("Buy milk", true, &order)
	require.NoError(t, err)

	require.NotNil(t, todo.Order)
	assert.Equal(t, int64(7), *todo.Order)
	assert.True(t, todo.Completed)
}

func TestTodoCreateWithServerOrder(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromServer)

	first, err := todos.Create("first", false, nil)
	require.NoError(t, err)
	require.NotNil(t, first.Order)
	assert.Equal(t, int64(1), *first.Order)

	explicit := int64(10)
	second, err := todos.Create("second", false, &explicit)
	require.NoError(t, err)
	require.NotNil(t, second.Order)
	assert.Equal(t, int64(10), *second.Order)

	third, err := todos.Create("third", false, nil)
	require.NoError(t, err)
	require.NotNil(t, third.Order)
	assert.Equal(t, int64(11), *third.Order)
}

func TestTodoGetNotFound(t *testing.T) {
	todos, _ := newTestRepos(t)

	_, err := todos.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoUpdatePartial(t *testing.T) {
	todos, _ := newTestRepos(t)

	order := int64(3)
	created, err := todos.Create("Buy milk", false, &order)
	require.NoError(t, err)

	completed := true
	updated, err := todos.Update(created.ID, TodoPatch{Completed: &completed})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", updated.Title)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.Order)
	assert.Equal(t, int64(3), *updated.Order)
}

func TestTodoUpdateTitleLinksNewTags(t *testing.T) {
	todos, _ := newTestRepos(t)

	created, err := todos.Create("Buy milk", false, nil)
	require.NoError(t, err)

	title := "Buy oat milk #shopping"
	updated, err := todos.Update(created.ID, TodoPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, []string{"shopping"}, tagNames(updated.Tags))
}

func TestTodoUpdateNotFound(t *testing.T) {
	todos, _ := newTestRepos(t)

	completed := true
	_, err := todos.Update(42, TodoPatch{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoDeleteRemovesAssociations(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)

	created, err := todos.Create("Buy milk #shopping", false, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), countJoinRows(t, db))

	require.NoError(t, todos.Delete(created.ID))

	assert.Equal(t, int64(0), countJoinRows(t, db))
	_, err = todos.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoDeleteNotFound(t *testing.T) {
	todos, _ := newTestRepos(t)

	err := todos.Delete(123)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoClearCascades(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)

	_, err := todos.Create("a #x", false, nil)
	require.NoError(t, err)
	_, err = todos.Create("b #y", false, nil)
	require.NoError(t, err)

	require.NoError(t, todos.Clear())

	all, err := todos.List()
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, int64(0), countJoinRows(t, db))
}

func TestAddTagIdempotent(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)
	tags := NewTagRepository(db)

	todo, err := todos.Create("Buy milk", false, nil)
	require.NoError(t, err)
	tag, err := tags.Create("shopping")
	require.NoError(t, err)

	require.NoError(t, todos.AddTag(todo.ID, tag.ID))
	require.NoError(t, todos.AddTag(todo.ID, tag.ID))

	assert.Equal(t, int64(1), countJoinRows(t, db))
}

func TestAddTagRequiresBothSides(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)
	tags := NewTagRepository(db)

	todo, err := todos.Create("Buy milk", false, nil)
	require.NoError(t, err)
	tag, err := tags.Create("shopping")
	require.NoError(t, err)

	assert.ErrorIs(t, todos.AddTag(99, tag.ID), ErrNotFound)
	assert.ErrorIs(t, todos.AddTag(todo.ID, 99), ErrNotFound)
	assert.Equal(t, int64(0), countJoinRows(t, db))
}

func TestRemoveTag(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)
	tags := NewTagRepository(db)

	todo, err := todos.Create("Buy milk", false, nil)
	require.NoError(t, err)
	tag, err := tags.Create("shopping")
	require.NoError(t, err)
	require.NoError(t, todos.AddTag(todo.ID, tag.ID))

	require.NoError(t, todos.RemoveTag(todo.ID, tag.ID))
	assert.ErrorIs(t, todos.RemoveTag(todo.ID, tag.ID), ErrNotFound)
}

func TestRemoveAllTags(t *testing.T) {
	db := newTestDB(t)
	todos := NewTodoRepository(db, config.OrderFromClient)

	todo, err := todos.Create("Buy milk #a #b", false, nil)
	require.NoError(t, err)
	require.Equal(t, int64(2), countJoinRows(t, db))

	require.NoError(t, todos.RemoveAllTags(todo.ID))
	assert.Equal(t, int64(0), countJoinRows(t, db))

	assert.ErrorIs(t, todos.RemoveAllTags(99), ErrNotFound)
}

func TestListTagsRequiresTodo(t *testing.T) {
	todos, _ := newTestRepos(t)

	_, err := todos.ListTags(7)
	assert.ErrorIs(t, err, ErrNotFound)
}
