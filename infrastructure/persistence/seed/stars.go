package seed

import "ziwei-backend/domain/knowledge"

// The fourteen major stars (十四主星). Palace meanings cover only the
// placements the source texts document; the enricher degrades gracefully
// for the rest.
var stars = []knowledge.Star{
	{
		ID:            "ziwei",
		Number:        1,
		Chinese:       "紫微",
		English:       "Ziwei / Purple Emperor",
		Meaning:       "Purple Forbidden Star - Leadership, nobility, authority",
		Element:       "Yin Earth",
		Archetype:     "The Emperor, Leader, Organizer, Monarch",
		GeneralNature: "Leadership, authority, nobility, stability, wisdom, organizational ability",
		KeyTraits:     []string{"Natural leader", "Stable personality", "Wisdom", "Organizational skills", "Wealth accumulation"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Natural leader, strong personality, steady progress, respected position", Negative: "Overly authoritarian, difficult cooperation"},
			"fuqi":   {Positive: "Respectable spouse, stable partnership, wealthy marriage", Negative: "Dominant in marriage, spousal oppression"},
			"guanlu": {Positive: "Excellent career prospects, leadership position, career advancement", Negative: "Career pressure, unrealistic expectations"},
			"caibao": {Positive: "Wealth accumulation, good financial status, abundant resources", Negative: "Excessive spending on dignity"},
		},
	},
	{
		ID:            "tianji",
		Number:        2,
		Chinese:       "天機",
		English:       "Tianji / Heavenly Secret",
		Meaning:       "Smart Star - Intelligence, strategy, adaptability",
		Element:       "Yin Wood",
		Archetype:     "The Strategist, Assistant, Advisor, Clever Operator",
		GeneralNature: "Intelligence, strategy, planning, cleverness, adaptability, quick thinking",
		KeyTraits:     []string{"Strategic thinker", "Intelligent and clever", "Adaptable", "Problem solver", "Multiple talents"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Intelligent, strategic mind, clever problem-solver, resourceful", Negative: "Overthinking, scheming nature, restlessness"},
			"guanlu": {Positive: "Strategic career planning, good adaptability, intellectual work success", Negative: "Career instability, difficulty with commitment"},
			"caibao": {Positive: "Clever financial strategies, good wealth planning, multiple incomes", Negative: "Overly complex planning, financial restlessness"},
		},
	},
	{
		ID:            "taiyang",
		Number:        3,
		Chinese:       "太陽",
		English:       "Taiyang / Sun",
		Meaning:       "Sun Star - Leadership, masculinity, visionary",
		Element:       "Yang Fire",
		Archetype:     "The Sun, Leader, Masculine Force, Father-Husband-Son",
		GeneralNature: "Leadership, directness, visionary thinking, self-sacrifice, universal love, generosity, warmth",
		KeyTraits:     []string{"Natural leader", "Direct and forthright", "Visionary idealist", "Generous and selfless", "Warm personality", "Famous"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Natural leader, direct personality, warm character, visionary, famous", Negative: "Too direct, idealistic naivety, overconfident"},
			"guanlu": {Positive: "Excellent career prospects, leadership, visionary work, generous boss", Negative: "Career visibility attracts criticism, idealistic failures"},
			"caibao": {Positive: "Generous with money, idealistic financial goals, good income through fame", Negative: "Over-generous spending, idealistic losses"},
		},
	},
	{
		ID:            "wuqu",
		Number:        4,
		Chinese:       "武曲",
		English:       "Wuqu / Finance Star",
		Meaning:       "Finance Star - Wealth, discipline, financial expertise",
		Element:       "Yin Metal",
		Archetype:     "The Merchant, Businessman, Worker, Financial Expert",
		GeneralNature: "Financial acumen, wealth accumulation, discipline, decisiveness, inner strength, diligent work",
		KeyTraits:     []string{"Financial expert", "Wealth focused", "Disciplined and cautious", "Hard worker", "Decisive", "Practical"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Financial acumen, disciplined, wealth accumulation ability, hard-working", Negative: "Too focused on money, rigid, lonely"},
			"caibao": {Positive: "Excellent financial status, wealth accumulation, good management, stable income", Negative: "Difficult wealth despite effort, work-hard-earn-little"},
			"guanlu": {Positive: "Excellent in finance roles, disciplined work ethic, reliable professional", Negative: "Career boredom, difficulty with creativity"},
		},
	},
	{
		ID:            "tiantong",
		Number:        5,
		Chinese:       "天同",
		English:       "Tiantong / Caring Star",
		Meaning:       "Caring Star - Kindness, benevolence, optimism",
		Element:       "Yang Water",
		Archetype:     "The Caretaker, Gentle Soul, Junior, Nurturing Figure",
		GeneralNature: "Kindness, gentleness, benevolence, optimism, easygoingness, pleasure-seeking, good fortune",
		KeyTraits:     []string{"Naturally kind", "Gentle and caring", "Optimistic", "Easygoing", "Pleasure-loving", "Lucky", "Lazy tendencies"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Optimistic, kind, gentle, easygoing, good fortune, content", Negative: "Lazy, lacks ambition, procrastinating"},
			"fuqi":   {Positive: "Gentle and caring spouse, easygoing marriage, pleasurable partnership", Negative: "Too easygoing, lacks passion, lazy"},
			"caibao": {Positive: "Good financial fortune, pleasant spending, wealth through luck", Negative: "Lazy management, overspending, lack of discipline"},
		},
	},
	{
		ID:            "lianzhen",
		Number:        6,
		Chinese:       "廉貞",
		English:       "Lianzhen / Upright Star",
		Meaning:       "Upright Star - Integrity, justice, passion",
		Element:       "Yin Fire",
		Archetype:     "The Judge, Virgin, Lawyer, Strict Enforcer, Passionate Soul",
		GeneralNature: "Strictness, integrity, passion, judgment, justice, double-facedness, sensuality",
		KeyTraits:     []string{"Strict and upright", "Passionate nature", "Judicial mind", "Double-faced", "Passionate about justice", "Sensual", "Humorous"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Upright, integrity-focused, passionate about justice, witty", Negative: "Too strict, double-faced, passionate conflicts"},
			"fuqi":   {Positive: "Passionate marriage, intense emotional connection, just partnership", Negative: "Passionate arguments, double-faced confusion"},
			"guanlu": {Positive: "Excellent in legal/justice careers, strict standards, passionate work", Negative: "Career punishment, passionate conflicts"},
		},
	},
	{
		ID:            "tianfu",
		Number:        7,
		Chinese:       "天府",
		English:       "Tianfu / Treasury Star",
		Meaning:       "Treasury Star - Wealth, stability, benevolence",
		Element:       "Yang Earth",
		Archetype:     "The Treasurer, Senior Official, Beneficent Master, Stabilizer",
		GeneralNature: "Wealth and prosperity, stability, benevolence, generosity, official position, leadership",
		KeyTraits:     []string{"Wealth accumulation", "Stable nature", "Benevolent leader", "Conservative", "Strong backing", "Reliable foundation"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Excellent wealth fortune, stable, benevolent, strong foundation, dignified", Negative: "Too conservative, overly cautious, rigid"},
			"caibao": {Positive: "Excellent wealth fortune, stable foundation, generous resources, good property wealth", Negative: "Conservative means only, difficulty with speculation"},
			"guanlu": {Positive: "Excellent career prospects, stable position, benevolent superior, wealthy career", Negative: "Limited by conservative approach, stuck in positions"},
		},
	},
	{
		ID:            "taiyin",
		Number:        8,
		Chinese:       "太陰",
		English:       "Taiyin / Moon Star",
		Meaning:       "Moon Star - Femininity, intuition, receptivity",
		Element:       "Yin Water",
		Archetype:     "The Mother, Feminine Leader, Intuitive Soul, Nurturer",
		GeneralNature: "Femininity, intuition, receptivity, passive development, introspection, domestic focus, emotional depth",
		KeyTraits:     []string{"Intuitive nature", "Feminine sensibility", "Emotional depth", "Nurturing instinct", "Receptive", "Domestic oriented", "Artistic"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":     {Positive: "Intuitive, gentle feminine energy, emotional depth, receptive, artistic, good with women", Negative: "Too passive, emotional vulnerability, selfish"},
			"caibao":   {Positive: "Good wealth fortune, especially real estate, passive income, artistic ventures", Negative: "Passive accumulation, selfish spending, extravagant"},
			"tianzhai": {Positive: "Excellent real estate fortune, good home, intuitive design, property wealth", Negative: "Selfish home, extravagant spending, emotional complications"},
		},
	},
	{
		ID:            "tanlang",
		Number:        9,
		Chinese:       "貪狼",
		English:       "Tanlang / Greedy Wolf",
		Meaning:       "Greedy Wolf Star - Desire, peach blossom, curiosity",
		Element:       "Yang Wood and Yin Water",
		Archetype:     "The Hunter, Extravagant, Flirt, Risk-Taker, Seeker",
		GeneralNature: "Desire and appetite, peach blossom luck, communication skills, curiosity, extravagance, libido, risk-taking",
		KeyTraits:     []string{"Desire-driven", "Excellent communicator", "Peach blossom luck", "Risk-taker", "Extravagant", "Charming", "Curious", "Sensual"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Excellent communication, charming, curious, peach blossom luck, popular", Negative: "Greedy, risk-taking, sensual indulgence, impulsive"},
			"fuqi":   {Positive: "Excellent marriage charm, strong desire in love, peach blossom, passionate romantic", Negative: "Multiple partners, infidelity risk, sensual temptations"},
			"caibao": {Positive: "Multiple income sources, good communication, desire-driven wealth, speculative gains", Negative: "Greedy losses, extravagant spending, speculative failures"},
		},
	},
	{
		ID:            "jumen",
		Number:        10,
		Chinese:       "巨門",
		English:       "Jumen / Gloomy Star",
		Meaning:       "Gloomy Star - Eloquence, honesty, complexity",
		Element:       "Yin Water",
		Archetype:     "The Lawyer, Parliamentarian, Singer, Debater, Truth-Speaker",
		GeneralNature: "Eloquence and communication, frankness, duality, betrayal potential, quarrels, notoriety, secrets",
		KeyTraits:     []string{"Excellent communicator", "Eloquent speaker", "Frank and honest", "Debater nature", "Negative reputation risk", "Betrayal risk", "Quarrelsome"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Excellent communication, frank and honest, eloquent speaker, powerful voice", Negative: "Gloomy outlook, negative reputation, frank too much, quarrelsome"},
			"fuqi":   {Positive: "Excellent marriage communication, frank partnership, good verbal intimacy", Negative: "Marriage quarrels, spousal betrayal, communication conflicts"},
			"guanlu": {Positive: "Excellent career communication, eloquent professional, good in legal/debate careers", Negative: "Career quarrels, workplace betrayal, negative reputation"},
		},
	},
	{
		ID:            "tianxiang",
		Number:        11,
		Chinese:       "天相",
		English:       "Tianxiang / Minister Star",
		Meaning:       "Minister Star - Support, assistance, appearance",
		Element:       "Yang Water",
		Archetype:     "The Minister, Assistant, Delegate, Supporter, Benefactor",
		GeneralNature: "Support and assistance, high official position, benevolence, stability, loyalty, appearance, inheritance",
		KeyTraits:     []string{"Supportive nature", "Benevolent helper", "Official position", "Good appearance", "Loyal supporter", "Inheritance blessed", "Stable"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":     {Positive: "Supportive and helpful, benevolent, good appearance, stable, loyal, inherited fortune", Negative: "Too supportive, lacking initiative, over-loyal"},
			"guanlu":   {Positive: "Good career support, benevolent superiors, stable position, inherited position, loyal", Negative: "Career dependent on support, lacking achievement, stable but stagnant"},
			"tianzhai": {Positive: "Good property fortune, benevolent help, inherited property, stable home", Negative: "Property dependent on support, inherited limitations"},
		},
	},
	{
		ID:            "tianliang",
		Number:        12,
		Chinese:       "天梁",
		English:       "Tianliang / Blessing Star",
		Meaning:       "Blessing Star - Education, wisdom, protection",
		Element:       "Yang Earth and Yang Wood",
		Archetype:     "The Teacher, Scholar, Wise Counselor, Protector, Guide",
		GeneralNature: "Education and wisdom, stability and support, benevolence, tolerance, forgiveness, scholarly, guidance",
		KeyTraits:     []string{"Scholarly wisdom", "Teacher/mentor nature", "Benevolent protector", "Tolerant and forgiving", "Stable foundation", "Guidance ability", "Longevity blessed"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":     {Positive: "Wisdom and scholarship, good education, benevolent, tolerant, protective, stable, longevity", Negative: "Overly academic, rigid morals, tolerant to point of enabling"},
			"guanlu":   {Positive: "Excellent in education/mentoring, wise counsel, protective supervisor, stable, scholarly", Negative: "Rigid career path, overly protective management, academic limitations"},
			"tianzhai": {Positive: "Good property fortune, benevolent home, stable real estate, protective, longevity", Negative: "Rigid standards, overly protective environment, stagnant"},
		},
	},
	{
		ID:            "qisha",
		Number:        13,
		Chinese:       "七殺",
		English:       "Qisha / Power Star",
		Meaning:       "Power Star - Authority, challenges, courage",
		Element:       "Yin Metal and Yang Fire",
		Archetype:     "The Military Leader, Warrior, Executive, Risk-Taker, Challenger",
		GeneralNature: "Power and authority, challenges and obstacles, courage and resilience, direct action, conflict, heroism",
		KeyTraits:     []string{"Powerful and commanding", "Courageous warrior", "Obstacle overcomer", "Ambitious", "Quick tempered", "Direct and forceful", "Risk-taker"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Strong and powerful, courageous, ambitious, obstacle overcoming, resilient, commanding", Negative: "Aggressive, quick-tempered, stubborn, difficult cooperation"},
			"guanlu": {Positive: "Excellent career advancement, powerful executive, courageous professional, ambitious growth", Negative: "Career conflicts, aggressive behavior, risk-taking failures"},
			"caibao": {Positive: "Ambitious wealth building, powerful income, courageous financial risk, speculative gains", Negative: "Aggressive financial behavior, risky investments, financial losses"},
		},
	},
	{
		ID:            "pojun",
		Number:        14,
		Chinese:       "破軍",
		English:       "Pojun / Destruction Star",
		Meaning:       "Destruction Star - Transformation, disruption, change",
		Element:       "Yin Water",
		Archetype:     "The Disruptor, Transformer, Betrayer, Restless Seeker, Revolutionary",
		GeneralNature: "Transformation and change, disruption of old patterns, destruction and rebuilding, betrayal, loss and gain",
		KeyTraits:     []string{"Transformative force", "Change bringer", "Disruptive energy", "Restless nature", "Betrayal risk", "Revolutionary thinker", "Loss and rebirth"},
		PalaceMeanings: map[string]knowledge.PalaceMeaning{
			"ming":   {Positive: "Transformative personality, innovative thinking, adaptable, revolutionary, personal growth", Negative: "Destructive tendencies, constant restlessness, betrayal-prone, chaotic"},
			"guanlu": {Positive: "Career innovation, entrepreneurial disruption, adaptable professional", Negative: "Destructive moves, job losses, career disruption, betrayal"},
			"caibao": {Positive: "Transforming wealth through innovation, cycles of loss/gain, entrepreneurial disruption", Negative: "Destructive spending, financial ruin, constantly disrupted"},
		},
	},
}
