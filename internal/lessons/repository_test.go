package lessons

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinyu/pindrill/internal/store"
	"github.com/jinyu/pindrill/internal/vocab"
)

func newTestRepo(t *testing.T) (*Repository, context.Context) {
	t.Helper()
	return NewRepository(store.NewMemKV()), context.Background()
}

func TestSeedInstallsStarterAndPredefined(t *testing.T) {
	r, ctx := newTestRepo(t)

	r.Seed(ctx)
	all := r.List(ctx)
	require.Len(t, all, 3)

	assert.Equal(t, "Default Lesson", all[0].Name)
	assert.Len(t, all[0].Words, 20)
	assert.False(t, all[0].Predefined)

	assert.True(t, all[1].Predefined)
	assert.Equal(t, "p3", all[1].Level)
	assert.True(t, all[2].Predefined)
	assert.Equal(t, "p4", all[2].Level)

	// Seeding again must not duplicate.
	r.Seed(ctx)
	assert.Len(t, r.List(ctx), 3)
}

func TestSaveLessonCreate(t *testing.T) {
	r, ctx := newTestRepo(t)

	lesson, err := r.SaveLesson(ctx, "  Chapter 1 ", "你好,ni3 hao3\n谢谢,xie4 xie", "")
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1", lesson.Name)
	require.Len(t, lesson.Words, 2)
	assert.NotEmpty(t, lesson.Words[0].ID)

	all := r.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, lesson.ID, all[0].ID)
}

func TestSaveLessonRejectsEmptyName(t *testing.T) {
	r, ctx := newTestRepo(t)

	_, err := r.SaveLesson(ctx, "   ", "你好,ni3 hao3", "")
	require.Error(t, err)
	assert.Empty(t, r.List(ctx))
}

func TestSaveLessonInvalidLineWritesNothing(t *testing.T) {
	r, ctx := newTestRepo(t)

	_, err := r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3\nbroken line", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken line")
	assert.Empty(t, r.List(ctx))
}

func TestSaveLessonUpdatePreservesMatchingWordIDs(t *testing.T) {
	r, ctx := newTestRepo(t)

	orig, err := r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3\n谢谢,xie4 xie", "")
	require.NoError(t, err)
	keptID := orig.Words[0].ID

	updated, err := r.SaveLesson(ctx, "Chapter 1 v2", "你好,ni3 hao3\n再见,zai4 jian4", orig.ID)
	require.NoError(t, err)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, "Chapter 1 v2", updated.Name)
	require.Len(t, updated.Words, 2)

	// 你好 keeps its id, 再见 gets a fresh one, 谢谢 is gone.
	assert.Equal(t, keptID, updated.Words[0].ID)
	assert.NotEqual(t, orig.Words[1].ID, updated.Words[1].ID)
}

func TestSaveLessonUpdateMissingLesson(t *testing.T) {
	r, ctx := newTestRepo(t)

	_, err := r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3", "no-such-id")
	require.Error(t, err)
}

func TestDeleteLesson(t *testing.T) {
	r, ctx := newTestRepo(t)

	a, _ := r.SaveLesson(ctx, "A", "你好,ni3 hao3", "")
	b, _ := r.SaveLesson(ctx, "B", "再见,zai4 jian4", "")

	r.Delete(ctx, a.ID)
	all := r.List(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)

	// Deleting an absent id is a no-op.
	r.Delete(ctx, "missing")
	assert.Len(t, r.List(ctx), 1)
}

func TestAllWords(t *testing.T) {
	r, ctx := newTestRepo(t)

	a, _ := r.SaveLesson(ctx, "A", "你好,ni3 hao3\n谢谢,xie4 xie", "")
	_, err := r.SaveLesson(ctx, "B", "再见,zai4 jian4", "")
	require.NoError(t, err)

	assert.Len(t, r.AllWords(ctx), 3)
	assert.Len(t, r.AllWords(ctx, a.ID), 2)
	assert.Empty(t, r.AllWords(ctx, "missing"))
}

func backupJSON(t *testing.T, all []vocab.Lesson) []byte {
	t.Helper()
	raw, err := json.Marshal(all)
	require.NoError(t, err)
	return raw
}

func TestImportLessonsAddsNewSkipsDuplicates(t *testing.T) {
	r, ctx := newTestRepo(t)
	_, err := r.SaveLesson(ctx, "Existing", "你好,ni3 hao3", "")
	require.NoError(t, err)

	raw := backupJSON(t, []vocab.Lesson{
		{Name: "Existing", Words: []vocab.Word{{Character: "你好", Pinyin: "ni3 hao3"}}},
		{Name: "Fresh", Words: []vocab.Word{{ID: "old-id", Character: "再见", Pinyin: "zai4 jian4"}}},
	})

	added, err := r.ImportLessons(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	all := r.List(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Fresh", all[1].Name)
	// Imported ids are never trusted.
	assert.NotEqual(t, "old-id", all[1].Words[0].ID)
}

func TestImportLessonsAllDuplicates(t *testing.T) {
	r, ctx := newTestRepo(t)
	_, err := r.SaveLesson(ctx, "Existing", "你好,ni3 hao3", "")
	require.NoError(t, err)

	raw := backupJSON(t, []vocab.Lesson{
		{Name: "Existing", Words: []vocab.Word{{Character: "你好", Pinyin: "ni3 hao3"}}},
	})
	_, err = r.ImportLessons(ctx, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exist")
}

func TestImportLessonsRejectsInvalidPayload(t *testing.T) {
	r, ctx := newTestRepo(t)

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"not an array", `{"name":"x"}`},
		{"empty array", `[]`},
		{"lesson without words", `[{"name":"x","words":[]}]`},
		{"word missing pinyin", `[{"name":"x","words":[{"character":"你"}]}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.ImportLessons(ctx, []byte(tc.raw))
			require.Error(t, err)
		})
	}
}

func TestCommitImportOverwriteKeepsStoredIDs(t *testing.T) {
	r, ctx := newTestRepo(t)
	orig, err := r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3", "")
	require.NoError(t, err)

	raw := backupJSON(t, []vocab.Lesson{
		{Name: "Chapter 1", Words: []vocab.Word{
			{Character: "你好", Pinyin: "ni3 hao3"},
			{Character: "再见", Pinyin: "zai4 jian4"},
		}},
	})

	a, err := r.AnalyzeImport(ctx, raw)
	require.NoError(t, err)
	assert.Empty(t, a.New)
	require.Len(t, a.Duplicates, 1)

	added, replaced := r.CommitImport(ctx, a, true)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, replaced)

	got, ok := r.Get(ctx, orig.ID)
	require.True(t, ok)
	require.Len(t, got.Words, 2)
	// The matching word keeps its id so mistake history survives.
	assert.Equal(t, orig.Words[0].ID, got.Words[0].ID)
}

func TestCommitImportWithoutOverwriteSkipsDuplicates(t *testing.T) {
	r, ctx := newTestRepo(t)
	orig, err := r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3", "")
	require.NoError(t, err)

	raw := backupJSON(t, []vocab.Lesson{
		{Name: "Chapter 1", Words: []vocab.Word{{Character: "再见", Pinyin: "zai4 jian4"}}},
	})
	a, err := r.AnalyzeImport(ctx, raw)
	require.NoError(t, err)

	added, replaced := r.CommitImport(ctx, a, false)
	assert.Zero(t, added)
	assert.Zero(t, replaced)

	got, _ := r.Get(ctx, orig.ID)
	require.Len(t, got.Words, 1)
	assert.Equal(t, "你好", got.Words[0].Character)
}

func TestExportJSON(t *testing.T) {
	r, ctx := newTestRepo(t)

	_, err := r.ExportJSON(ctx)
	require.Error(t, err, "empty collection must not export")

	_, err = r.SaveLesson(ctx, "Chapter 1", "你好,ni3 hao3", "")
	require.NoError(t, err)

	raw, err := r.ExportJSON(ctx)
	require.NoError(t, err)

	var roundTrip []vocab.Lesson
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	require.Len(t, roundTrip, 1)
	assert.Equal(t, "Chapter 1", roundTrip[0].Name)
	assert.True(t, strings.HasPrefix(string(raw), "["), "export should be a JSON array")
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "pinyin-lessons-backup-2026-08-29.json", ExportFilename(now))
}
