package lessons

import (
	"github.com/google/uuid"

	"github.com/jinyu/pindrill/internal/vocab"
)

// starterWords is the beginner vocabulary installed on first run.
var starterWords = []vocab.WordEntry{
	{Character: "你好", Pinyin: "ni3 hao3"},
	{Character: "谢谢", Pinyin: "xie4 xie"},
	{Character: "不客气", Pinyin: "bu2 ke4 qi"},
	{Character: "再见", Pinyin: "zai4 jian4"},
	{Character: "老师", Pinyin: "lao3 shi1"},
	{Character: "学生", Pinyin: "xue2 sheng"},
	{Character: "是", Pinyin: "shi4"},
	{Character: "不是", Pinyin: "bu2 shi4"},
	{Character: "我", Pinyin: "wo3"},
	{Character: "你", Pinyin: "ni3"},
	{Character: "他", Pinyin: "ta1"},
	{Character: "她", Pinyin: "ta1"},
	{Character: "我们", Pinyin: "wo3 men"},
	{Character: "你们", Pinyin: "ni3 men"},
	{Character: "他们", Pinyin: "ta1 men"},
	{Character: "早上好", Pinyin: "zao3 shang hao"},
	{Character: "晚上好", Pinyin: "wan3 shang hao"},
	{Character: "对不起", Pinyin: "dui4 bu qi3"},
	{Character: "没关系", Pinyin: "mei2 guan1 xi"},
	{Character: "什么", Pinyin: "shen2 me"},
}

// seedLessons builds the first-run collection: a starter lesson with fresh
// ids plus the predefined curriculum lessons, which keep stable ids so a
// reseeded store lines up with old mistake records.
func seedLessons() []vocab.Lesson {
	starter := vocab.Lesson{
		ID:   uuid.NewString(),
		Name: "Default Lesson",
	}
	for _, e := range starterWords {
		starter.Words = append(starter.Words, vocab.Word{
			ID:        uuid.NewString(),
			Character: e.Character,
			Pinyin:    e.Pinyin,
		})
	}

	return append([]vocab.Lesson{starter}, predefinedLessons()...)
}

// predefinedLessons returns the built-in curriculum lessons.
func predefinedLessons() []vocab.Lesson {
	return []vocab.Lesson{
		{
			ID:         "p3-l1",
			Name:       "P3 Lesson 1",
			Predefined: true,
			Level:      "p3",
			Words: []vocab.Word{
				{ID: "p3-l1-w1", Character: "九", Pinyin: "jiu3"},
				{ID: "p3-l1-w2", Character: "十", Pinyin: "shi2"},
			},
		},
		{
			ID:         "p4-l1",
			Name:       "P4 Lesson 1",
			Predefined: true,
			Level:      "p4",
			Words: []vocab.Word{
				{ID: "p4-l1-w1", Character: "百", Pinyin: "bai3"},
				{ID: "p4-l1-w2", Character: "千", Pinyin: "qian1"},
			},
		},
	}
}
