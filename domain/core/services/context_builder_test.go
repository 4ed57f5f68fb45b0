package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
)

func testBuilder() *ContextBuilder {
	return NewContextBuilder(config.DefaultDomainConfig())
}

func userMsg(content string) valueobjects.Message {
	msg, _ := valueobjects.NewUserMessage(content)
	return msg
}

func TestChartContext(t *testing.T) {
	builder := testBuilder()

	t.Run("renders the chart overview", func(t *testing.T) {
		ctx := builder.ChartContext(testChart())

		assert.Contains(t, ctx, "📊 Chart Overview:")
		assert.Contains(t, ctx, "Five Element Bureau: 木三局 (3)")
		assert.Contains(t, ctx, "Life House (命宮): Index 0")
		assert.Contains(t, ctx, "Total Major Stars: 3")
		assert.Contains(t, ctx, "⭐ Major Stars Placed:")
		assert.Contains(t, ctx, "🔄 Four Transformations:")
		assert.Contains(t, ctx, "祿: 廉貞")
		assert.Contains(t, ctx, "🏠 Key Palaces:")
		assert.Contains(t, ctx, "命宮: 紫微")
	})

	t.Run("only the leading palaces are listed", func(t *testing.T) {
		ctx := builder.ChartContext(testChart())
		// 官祿宮 is the fourth house and falls outside the context window
		assert.NotContains(t, ctx, "官祿宮: 太陽")
	})

	t.Run("missing chart degrades to placeholder", func(t *testing.T) {
		assert.Equal(t, "Chart data unavailable", builder.ChartContext(nil))
		assert.Equal(t, "Chart data unavailable", builder.ChartContext(&entities.Chart{}))
	})

	t.Run("starless leading palaces fall back to a pointer", func(t *testing.T) {
		chart := testChart()
		for i := range chart.Houses {
			chart.Houses[i].MajorStars = nil
		}
		assert.Contains(t, builder.ChartContext(chart), "See detailed chart")
	})
}

func TestSystemPrompt(t *testing.T) {
	builder := testBuilder()
	prompt := builder.SystemPrompt(testChart())

	assert.True(t, strings.HasPrefix(prompt,
		"You are a compassionate and knowledgeable Ziwei Astrology (紫微斗數) expert"))
	assert.Contains(t, prompt, "📊 Chart Overview:")
	assert.Contains(t, prompt, "官祿宮 (career palace)")
	assert.Contains(t, prompt, "Keep responses concise (200-400 words) but substantive.")
}

func TestSummaryPrompt(t *testing.T) {
	builder := testBuilder()

	messages := []valueobjects.Message{
		userMsg("What about my career?"),
		{Role: valueobjects.RoleAssistant, Content: "Your career palace shows promise."},
	}

	prompt := builder.SummaryPrompt(messages)
	assert.True(t, strings.HasPrefix(prompt,
		"Summarize this conversation about a Ziwei birth chart in 2-3 sentences:"))
	assert.Contains(t, prompt, "user: What about my career?")
	assert.Contains(t, prompt, "assistant: Your career palace shows promise.")
}

func TestExtractTopics(t *testing.T) {
	builder := testBuilder()

	t.Run("matches english and chinese keywords", func(t *testing.T) {
		topics := builder.ExtractTopics([]valueobjects.Message{
			userMsg("Tell me about my career prospects"),
			userMsg("我的夫妻宮如何？"),
		})
		assert.Equal(t, []string{"career", "relationship"}, topics)
	})

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		topics := builder.ExtractTopics([]valueobjects.Message{userMsg("MY HEALTH WORRIES ME")})
		assert.Contains(t, topics, "health")
	})

	t.Run("each topic reported once", func(t *testing.T) {
		topics := builder.ExtractTopics([]valueobjects.Message{
			userMsg("work work work"),
			userMsg("my job and my career"),
		})
		assert.Equal(t, []string{"career"}, topics)
	})

	t.Run("no messages means no topics", func(t *testing.T) {
		assert.Empty(t, builder.ExtractTopics(nil))
	})
}

func TestFollowUpQuestions(t *testing.T) {
	builder := testBuilder()

	t.Run("generic suggestions always present", func(t *testing.T) {
		questions := builder.FollowUpQuestions(nil)
		require.Len(t, questions, 2)
		assert.Equal(t, "Tell me more about my personality based on this chart", questions[0])
		assert.Equal(t, "What challenges should I prepare for?", questions[1])
	})

	t.Run("contextual suggestions come first", func(t *testing.T) {
		questions := builder.FollowUpQuestions([]string{"career", "finance"})
		require.Len(t, questions, 4)
		assert.Equal(t, "What are the best career transitions for me in the next decade?", questions[0])
		assert.Equal(t, "When is the best time to make major financial investments?", questions[1])
	})

	t.Run("list is capped at four", func(t *testing.T) {
		questions := builder.FollowUpQuestions([]string{"career", "relationship", "finance", "health"})
		assert.Len(t, questions, 4)
		// the generic pair is squeezed out
		assert.NotContains(t, questions, "What challenges should I prepare for?")
	})

	t.Run("topics without a mapped question are skipped", func(t *testing.T) {
		questions := builder.FollowUpQuestions([]string{"destiny", "personality"})
		assert.Len(t, questions, 2)
	})
}

func TestQualityScore(t *testing.T) {
	builder := testBuilder()

	t.Run("empty session gets the floor score", func(t *testing.T) {
		// 0 + 0 + 20 (avg below low bound) + 15 (base engagement)
		assert.Equal(t, 35, builder.QualityScore(0, 0, 0))
	})

	t.Run("engaged session scores higher", func(t *testing.T) {
		// 12 msgs: 24 + 2 topics: 6 + low avg: 20 + engaged: 30
		assert.Equal(t, 80, builder.QualityScore(12, 2, 1200))
	})

	t.Run("message and topic contributions are capped", func(t *testing.T) {
		// 30 cap + 20 cap + 20 low avg + 30 engaged, clamped to 100
		assert.Equal(t, 100, builder.QualityScore(100, 50, 100))
	})

	t.Run("token-heavy sessions lose the efficiency points", func(t *testing.T) {
		// 4 msgs: 8 + 1 topic: 3 + avg 1250 tokens: 0 + base: 15
		assert.Equal(t, 26, builder.QualityScore(4, 1, 5000))
	})

	t.Run("mid-band token usage earns half points", func(t *testing.T) {
		// 4 msgs: 8 + 0 topics + avg 750: 10 + base: 15
		assert.Equal(t, 33, builder.QualityScore(4, 0, 3000))
	})
}
