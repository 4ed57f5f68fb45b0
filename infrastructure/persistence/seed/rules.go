package seed

import "ziwei-backend/domain/knowledge"

// Interpretation rules from the Zhongzhou School (王亭之系統) with empirical
// validation statistics. Declaration order is the match order.
var rules = []knowledge.Rule{
	// Major stars
	{
		ID:             "rule-ziwei-ming",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "紫微", Palace: "命宮"},
		Interpretation: knowledge.Interpretation{Zh: "命主貴氣十足，具領導能力，性格堅決獨立。", En: "Noble bearing, leadership qualities", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 250, MatchRate: 0.82, ConfidenceLevel: 0.82},
	},
	{
		ID:             "rule-tianfu-ming",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "天府", Palace: "命宮"},
		Interpretation: knowledge.Interpretation{Zh: "福厚祿重，處事穩健，人生運程平順。", En: "Blessed with good fortune, stable trajectory", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 320, MatchRate: 0.79, ConfidenceLevel: 0.79},
	},
	{
		ID:             "rule-tianji",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "天機"},
		Interpretation: knowledge.Interpretation{Zh: "天機主聰慧變化，思想敏捷，適合從事競爭性工作。", En: "Intelligent, adaptable, suited for competitive work", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 280, MatchRate: 0.75, ConfidenceLevel: 0.75},
	},
	{
		ID:             "rule-taiyang",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "太陽"},
		Interpretation: knowledge.Interpretation{Zh: "太陽主熱情、光明、活力，外向開朗，社交能力強。", En: "Passionate, outgoing, strong social skills", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 290, MatchRate: 0.80, ConfidenceLevel: 0.80},
	},
	{
		ID:             "rule-wuqu",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "武曲"},
		Interpretation: knowledge.Interpretation{Zh: "武曲主權勢、決斷，做事幹練，適合領導職位。", En: "Decisive leader, strong authority", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 240, MatchRate: 0.77, ConfidenceLevel: 0.77},
	},
	{
		ID:             "rule-tiantong",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "天同"},
		Interpretation: knowledge.Interpretation{Zh: "天同主福氣、樂觀，為人和善，易獲人緣和信任。", En: "Fortunate, optimistic, trustworthy", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 260, MatchRate: 0.81, ConfidenceLevel: 0.81},
	},
	{
		ID:             "rule-lianzhen",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "廉貞"},
		Interpretation: knowledge.Interpretation{Zh: "廉貞主剛直、廉潔，有原則性，易為是非所困。", En: "Principled, righteous, can be stubborn", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 210, MatchRate: 0.73, ConfidenceLevel: 0.73},
	},
	{
		ID:             "rule-taiyin",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "太陰"},
		Interpretation: knowledge.Interpretation{Zh: "太陰主溫柔、文藝、母性，女性特質明顯，柔中帶剛。", En: "Gentle, artistic, feminine qualities", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 210, MatchRate: 0.77, ConfidenceLevel: 0.77},
	},
	{
		ID:             "rule-tanlang",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "貪狼"},
		Interpretation: knowledge.Interpretation{Zh: "貪狼主欲望、進取，野心大，追求物質享受和成功。", En: "Ambitious, materialistic, success-driven", Dimension: "財運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 270, MatchRate: 0.78, ConfidenceLevel: 0.78},
	},
	{
		ID:             "rule-jumen",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "巨門"},
		Interpretation: knowledge.Interpretation{Zh: "巨門主口才、聰慧，溝通能力強，易成為領導者。", En: "Eloquent, intelligent, born communicator", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 250, MatchRate: 0.76, ConfidenceLevel: 0.76},
	},
	{
		ID:             "rule-tianliang",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "天梁"},
		Interpretation: knowledge.Interpretation{Zh: "天梁主德行、保護，為人正直，易獲尊敬和信任。", En: "Virtuous protector, earns respect", Dimension: "性格"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 230, MatchRate: 0.80, ConfidenceLevel: 0.80},
	},
	{
		ID:             "rule-qisha",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "七殺"},
		Interpretation: knowledge.Interpretation{Zh: "七殺主決斷、威權，為人果斷勇敢，領導力強。", En: "Decisive warrior, strong leadership", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 220, MatchRate: 0.75, ConfidenceLevel: 0.75},
	},
	{
		ID:             "rule-pojun",
		Scope:          knowledge.ScopeStar,
		Condition:      knowledge.RuleCondition{Star: "破軍"},
		Interpretation: knowledge.Interpretation{Zh: "破軍主變化、革新，做事激進，追求創新改革。", En: "Revolutionary, innovative, embraces change", Dimension: "挑戰"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 200, MatchRate: 0.72, ConfidenceLevel: 0.72},
	},

	// Transformations
	{
		ID:             "rule-hua-lu",
		Scope:          knowledge.ScopeTransformation,
		Condition:      knowledge.RuleCondition{Transformation: "祿"},
		Interpretation: knowledge.Interpretation{Zh: "化祿代表利益、收入、好運，該宮位吉利順利。", En: "Brings wealth, income, and good fortune", Dimension: "財運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 400, MatchRate: 0.84, ConfidenceLevel: 0.84},
	},
	{
		ID:             "rule-hua-quan",
		Scope:          knowledge.ScopeTransformation,
		Condition:      knowledge.RuleCondition{Transformation: "權"},
		Interpretation: knowledge.Interpretation{Zh: "化權代表權力、掌控，該宮位增加影響力和控制力。", En: "Grants power and control", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 380, MatchRate: 0.82, ConfidenceLevel: 0.82},
	},
	{
		ID:             "rule-hua-ke",
		Scope:          knowledge.ScopeTransformation,
		Condition:      knowledge.RuleCondition{Transformation: "科"},
		Interpretation: knowledge.Interpretation{Zh: "化科代表名聲、聲譽，該宮位易獲名利和好名聲。", En: "Brings fame and good reputation", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 350, MatchRate: 0.81, ConfidenceLevel: 0.81},
	},
	{
		ID:             "rule-hua-ji",
		Scope:          knowledge.ScopeTransformation,
		Condition:      knowledge.RuleCondition{Transformation: "忌"},
		Interpretation: knowledge.Interpretation{Zh: "化忌代表困擾、阻滯，該宮位需特別注意和努力。", En: "Brings challenges requiring attention", Dimension: "挑戰"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 350, MatchRate: 0.80, ConfidenceLevel: 0.80},
	},

	// Major patterns (格局)
	{
		ID:             "rule-pattern-ziwei-taiyang",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"紫微", "太陽"}},
		Interpretation: knowledge.Interpretation{Zh: "紫日格局，性格開朗，事業心強，適合從政或經商。", En: "Outgoing, career-driven, suited for politics/business", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 180, MatchRate: 0.75, ConfidenceLevel: 0.75},
	},
	{
		ID:             "rule-pattern-ziwei-tianfu",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"紫微", "天府"}},
		Interpretation: knowledge.Interpretation{Zh: "紫府格局，福厚祿重，領導能力強，前途光明。", En: "Blessed with fortune and leadership", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 150, MatchRate: 0.77, ConfidenceLevel: 0.77},
	},
	{
		ID:             "rule-pattern-tianji-taiyin",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"天機", "太陰"}},
		Interpretation: knowledge.Interpretation{Zh: "日月格局，思想敏捷且內涵深厚，適合學術研究。", En: "Intelligent and introspective, suited for research", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 140, MatchRate: 0.73, ConfidenceLevel: 0.73},
	},
	{
		ID:             "rule-pattern-tiantong-taiyang",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"天同", "太陽"}},
		Interpretation: knowledge.Interpretation{Zh: "日月並行，福氣旺盛，為人樂觀開朗，易獲成功。", En: "Fortunate and optimistic, likely to succeed", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 160, MatchRate: 0.76, ConfidenceLevel: 0.76},
	},
	{
		ID:             "rule-pattern-tianliang-lianzhen",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"天梁", "廉貞"}},
		Interpretation: knowledge.Interpretation{Zh: "廉梁格局，為人正直廉潔，德行高尚，適合公職。", En: "Virtuous and principled, suited for civil service", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 130, MatchRate: 0.72, ConfidenceLevel: 0.72},
	},
	{
		ID:             "rule-pattern-wuqu-pojun",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"武曲", "破軍"}},
		Interpretation: knowledge.Interpretation{Zh: "武破格局，做事有魄力，易有起伏，需謹慎理財。", En: "Forceful but volatile, financial caution needed", Dimension: "財運"},
		Consensus:      knowledge.ConsensusDisputed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 120, MatchRate: 0.65, ConfidenceLevel: 0.65},
	},
	{
		ID:             "rule-pattern-tanlang-jumen",
		Scope:          knowledge.ScopePattern,
		Condition:      knowledge.RuleCondition{Pattern: []string{"貪狼", "巨門"}},
		Interpretation: knowledge.Interpretation{Zh: "貪巨格局，口才犀利，事業心強，易成就非凡。", En: "Eloquent and ambitious, achieves success", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 145, MatchRate: 0.74, ConfidenceLevel: 0.74},
	},

	// Palace-specific insights
	{
		ID:             "rule-palace-fuqi",
		Scope:          knowledge.ScopePalace,
		Condition:      knowledge.RuleCondition{Palace: "夫妻宮"},
		Interpretation: knowledge.Interpretation{Zh: "該宮位強，婚姻感情運勢順利，伴侶和睦。", En: "Strong palace indicates harmonious marriage", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 300, MatchRate: 0.78, ConfidenceLevel: 0.78},
	},
	{
		ID:             "rule-palace-caibao",
		Scope:          knowledge.ScopePalace,
		Condition:      knowledge.RuleCondition{Palace: "財帛宮"},
		Interpretation: knowledge.Interpretation{Zh: "該宮位強，財運旺盛，易有經濟來源充足。", En: "Strong palace indicates good financial prospects", Dimension: "財運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 320, MatchRate: 0.80, ConfidenceLevel: 0.80},
	},
	{
		ID:             "rule-palace-guanlu",
		Scope:          knowledge.ScopePalace,
		Condition:      knowledge.RuleCondition{Palace: "官祿宮"},
		Interpretation: knowledge.Interpretation{Zh: "該宮位強，事業運佳，工作順利，易升遷。", En: "Strong palace indicates career success and advancement", Dimension: "事業"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 310, MatchRate: 0.79, ConfidenceLevel: 0.79},
	},
	{
		ID:             "rule-palace-zinv",
		Scope:          knowledge.ScopePalace,
		Condition:      knowledge.RuleCondition{Palace: "子女宮"},
		Interpretation: knowledge.Interpretation{Zh: "該宮位強，子女緣份好，親子關係融洽。", En: "Strong palace indicates good family fortune", Dimension: "福運"},
		Consensus:      knowledge.ConsensusAgreed,
		Statistics:     knowledge.RuleStatistics{SampleSize: 270, MatchRate: 0.76, ConfidenceLevel: 0.76},
	},
}
