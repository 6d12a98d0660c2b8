// Package digest renders the trend document: a NotebookLM source list, a
// note article and a YouTube description, in that order.
package digest

import (
	"strings"

	"github.com/deusflow/trenddigest/internal/news"
	"github.com/deusflow/trenddigest/internal/pubdate"
)

// SectionSeparator sits between the three sections.
const SectionSeparator = "\n\n\n\n"

const (
	notebookHeader = "【NotebookLM用ソースURL】"

	noteHeadlineSuffix = "】Qiitaトレンド記事まとめ"
	noteIntro          = "本日のQiitaのトレンドをAIでまとめています。\n" +
		"通勤時や退勤時などにながら聞きしてはいかがでしょうか？\n" +
		"気になった記事は下記リンクから詳細へ！"

	youtubeHeadlineSuffix = "】Qiitaトレンド ポッドキャスト"
	youtubeIntro          = "本日のQiitaのトレンドをAIで音声にまとめています。\n" +
		"気になった記事は概要欄のリンクから詳細へ！"

	sourcesHeader = "出典"

	fixedHashtags = "#Qiita #エンジニア #ポッドキャスト"
)

// Build assembles the full document. top5 feeds the note section, top10 the
// YouTube hashtags.
func Build(items []news.Item, top5, top10 []news.RankedTag, date pubdate.DerivedDate) string {
	sections := []string{
		NotebookSection(items),
		NoteSection(items, top5, date),
		YouTubeSection(items, top10, date),
	}
	return strings.Join(sections, SectionSeparator)
}

// NotebookSection lists every item link under a fixed header.
func NotebookSection(items []news.Item) string {
	var b strings.Builder
	b.WriteString(notebookHeader)
	for _, it := range items {
		b.WriteString("\n")
		b.WriteString(it.Link)
	}
	return b.String()
}

// NoteSection is the article body for note.
func NoteSection(items []news.Item, top5 []news.RankedTag, date pubdate.DerivedDate) string {
	var b strings.Builder
	b.WriteString("【" + date.Formatted + noteHeadlineSuffix + "\n")
	b.WriteString(strings.Join(news.TagNames(top5), " ") + "\n")
	b.WriteString("\n")
	b.WriteString(noteIntro + "\n")
	b.WriteString("\n")
	b.WriteString(sourcesHeader + "\n")
	b.WriteString(itemBlocks(items))
	return b.String()
}

// YouTubeSection is the video description with hashtags.
func YouTubeSection(items []news.Item, top10 []news.RankedTag, date pubdate.DerivedDate) string {
	var b strings.Builder
	b.WriteString("【" + date.Short + youtubeHeadlineSuffix + "\n")
	b.WriteString(youtubeIntro + "\n")
	b.WriteString("\n")
	b.WriteString(sourcesHeader + "\n")
	b.WriteString(itemBlocks(items))
	b.WriteString("\n\n")
	b.WriteString(hashtagLine(top10))
	return b.String()
}

func itemBlocks(items []news.Item) string {
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, it.Title+"\n"+it.Link)
	}
	return strings.Join(blocks, "\n\n")
}

func hashtagLine(tags []news.RankedTag) string {
	parts := make([]string, 0, len(tags)+1)
	for _, t := range tags {
		parts = append(parts, "#"+t.Name)
	}
	parts = append(parts, fixedHashtags)
	return strings.Join(parts, " ")
}
