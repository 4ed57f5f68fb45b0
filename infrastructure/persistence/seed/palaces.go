package seed

import "ziwei-backend/domain/knowledge"

// The twelve palaces (十二宮), compiled from credible sources and
// traditional texts.
var palaces = []knowledge.Palace{
	{
		ID:                 "ming",
		Number:             1,
		Chinese:            "命宮",
		English:            "Life Palace",
		Meaning:            "Center of birth chart, representing overall fate and personality",
		Governs:            []string{"Personality traits", "Abilities and talents", "Temperament", "Physical appearance", "Life direction"},
		PositiveIndicators: "Natural leadership, positive mindset, strong character, good health, successful life trajectory",
		NegativeIndicators: "Obstacles in life direction, lack of confidence, health concerns",
	},
	{
		ID:                 "xiongdi",
		Number:             2,
		Chinese:            "兄弟宮",
		English:            "Siblings Palace",
		Meaning:            "Relationships with siblings and broader peer connections",
		Governs:            []string{"Sibling relationships", "Friendships", "Colleague relationships", "Support from peers"},
		PositiveIndicators: "Harmonious family relationships, strong social network, trustworthy companions",
		NegativeIndicators: "Conflict with siblings, betrayal by friends, isolation",
	},
	{
		ID:                 "fuqi",
		Number:             3,
		Chinese:            "夫妻宮",
		English:            "Spouse Palace",
		Meaning:            "Marriage, romantic relationships, and spousal connections",
		Governs:            []string{"Marriage status", "Spouse personality", "Romantic relationships", "Relationship harmony", "Love prospects"},
		PositiveIndicators: "Good spousal luck, harmonious marriage, supportive spouse, romantic fulfillment",
		NegativeIndicators: "Marriage difficulties, divorce risk, spousal conflict",
	},
	{
		ID:                 "zinv",
		Number:             4,
		Chinese:            "子女宮",
		English:            "Children Palace",
		Meaning:            "Relationship with children and family lineage",
		Governs:            []string{"Children and fertility", "Parenting style", "Child-rearing", "Family lineage"},
		PositiveIndicators: "Good fertility, harmonious parent-child relationships, successful children",
		NegativeIndicators: "Fertility issues, difficult parenting, strained relationships",
	},
	{
		ID:                 "caibao",
		Number:             5,
		Chinese:            "財帛宮",
		English:            "Wealth Palace",
		Meaning:            "Financial fortune, wealth accumulation, and management",
		Governs:            []string{"Financial status", "Wealth accumulation", "Income sources", "Investment fortune", "Business opportunities"},
		PositiveIndicators: "Abundant income, financial stability, successful ventures, wealth accumulation",
		NegativeIndicators: "Financial difficulties, poor management, loss of wealth",
	},
	{
		ID:                 "jieya",
		Number:             6,
		Chinese:            "疾厄宮",
		English:            "Health Palace",
		Meaning:            "Physical health, longevity, and bodily conditions",
		Governs:            []string{"Physical health", "Disease susceptibility", "Longevity", "Health conditions"},
		PositiveIndicators: "Good health, strong constitution, quick recovery, disease resistance",
		NegativeIndicators: "Chronic illnesses, weak constitution, slow recovery",
	},
	{
		ID:                 "qianyi",
		Number:             7,
		Chinese:            "遷移宮",
		English:            "Travel Palace",
		Meaning:            "How others perceive you and external presentation",
		Governs:            []string{"External image", "Social perception", "Travel fortune", "Migration and relocation"},
		PositiveIndicators: "Good reputation, positive perception, successful travel and relocation",
		NegativeIndicators: "Poor reputation, negative perception, travel difficulties",
	},
	{
		ID:                 "puyi",
		Number:             8,
		Chinese:            "僕役宮",
		English:            "Friends Palace",
		Meaning:            "Relationships with peers, subordinates, and colleagues",
		Governs:            []string{"Peer relationships", "Colleague interactions", "Employee relationships", "Business partnerships"},
		PositiveIndicators: "Good peer relationships, loyal employees, trustworthy partners",
		NegativeIndicators: "Colleague conflicts, betrayal, difficult partnerships",
	},
	{
		ID:                 "guanlu",
		Number:             9,
		Chinese:            "官祿宮",
		English:            "Career Palace",
		Meaning:            "Career path, work circumstances, and professional development",
		Governs:            []string{"Career choice", "Work attitude", "Entrepreneurial potential", "Career advancement", "Relationships with superiors"},
		PositiveIndicators: "Successful career, good job prospects, career advancement, professional achievement",
		NegativeIndicators: "Career obstacles, job loss risk, lack of advancement",
	},
	{
		ID:                 "tianzhai",
		Number:             10,
		Chinese:            "田宅宮",
		English:            "Property Palace",
		Meaning:            "Home, property, real estate, and family environment",
		Governs:            []string{"Real estate", "Home environment", "Living conditions", "Property ownership", "Family relationships at home"},
		PositiveIndicators: "Good property fortune, comfortable home, real estate success",
		NegativeIndicators: "Property difficulties, poor home conditions, real estate losses",
	},
	{
		ID:                 "fude",
		Number:             11,
		Chinese:            "福德宮",
		English:            "Blessings Palace",
		Meaning:            "Mental state, happiness, and spiritual well-being",
		Governs:            []string{"Mental health", "Happiness", "Life satisfaction", "Spiritual well-being", "Quality of life"},
		PositiveIndicators: "Good mental health, happiness and contentment, positive outlook",
		NegativeIndicators: "Mental distress, unhappiness, dissatisfaction, depression",
	},
	{
		ID:                 "fuqin",
		Number:             12,
		Chinese:            "父母宮",
		English:            "Parents Palace",
		Meaning:            "Relationship with parents and inherited traits",
		Governs:            []string{"Parental relationships", "Parent health and fortune", "Inheritance", "Family legacy"},
		PositiveIndicators: "Good parental relationships, parent prosperity, positive inheritance",
		NegativeIndicators: "Strained relationships, parent misfortune, inheritance problems",
	},
}
