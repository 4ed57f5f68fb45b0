package seed

import "ziwei-backend/domain/knowledge"

// The four transformations (四化)
var transformations = []knowledge.Transformation{
	{
		ID:               "luhua",
		Number:           1,
		Chinese:          "祿化",
		Pinyin:           "Lu Hua",
		English:          "Wealth Transformation",
		Meaning:          "Represents acquisition and satisfaction of desires through external resources",
		CharacterMeaning: "祿 (Lu) originally meant the salary of an ancient Chinese official - livelihood",
		Effects:          "Softens and refines star characteristics; leads to optimistic outcomes; brings material abundance",
		PositiveEffects:  []string{"Wealth accumulation", "Income increase", "Resource acquisition", "Desire fulfillment", "Material satisfaction"},
		NegativeEffects:  []string{"Excessive desire for material goods", "Superficial satisfaction", "Dependence on external resources"},
		BestWith:         []string{"Material system stars (Ziwei, Wuqu, Qisha, Pojun)", "Spiritual system stars (Tiantong, Taiyin)"},
		Interpretation:   "When a star undergoes Lu Transformation, it gains the ability to accumulate, prosper, and manifest physical results. Luck flows easily and resources come without excessive effort. The native enjoys abundance and finds satisfaction through material means.",
	},
	{
		ID:               "quanhua",
		Number:           2,
		Chinese:          "權化",
		Pinyin:           "Quan Hua",
		English:          "Power Transformation",
		Meaning:          "Represents authority, control, and decision-making power over what is obtained",
		CharacterMeaning: "權 (Quan) means authority, power, control, and decision-making ability",
		Effects:          "Enhances star influence and power; increases control and authority; strengthens ability to manifest characteristics",
		PositiveEffects:  []string{"Leadership enhancement", "Authoritative decision-making", "Increased influence", "Empowerment", "Stronger manifestation"},
		NegativeEffects:  []string{"With benevolent stars: easier achievement", "With malefic stars: may require more support or bring difficulty"},
		BestWith:         []string{"Most major stars", "Works best when star needs support to manifest fully"},
		Interpretation:   "When a star undergoes Quan Transformation, it gains authority and control. The native takes charge of circumstances and decides their own fate. Previously obtained resources are now managed with control and wisdom. Power and influence expand naturally.",
	},
	{
		ID:               "kehua",
		Number:           3,
		Chinese:          "科化",
		Pinyin:           "Ke Hua",
		English:          "Distinction Transformation",
		Meaning:          "Represents manifestation, visible achievement, and recognition through competence",
		CharacterMeaning: "科 (Ke) originally referred to a diploma or certificate of achievement - recognition and distinction",
		Effects:          "Brings recognition and fame; manifests competence visibly; increases reputation and honor; brings academic or professional distinction",
		PositiveEffects:  []string{"Academic achievement recognition", "Professional distinction", "Reputation building", "Fame and honor", "Merit recognition"},
		NegativeEffects:  []string{"With malefic stars: notoriety and negative fame", "Unwanted recognition", "Public scandal or dishonor"},
		BestWith:         []string{"Scholarly and professional stars", "Works well with any star for visible recognition"},
		Interpretation:   "When a star undergoes Ke Transformation, its qualities become visible and recognized by others. Competence and achievements are acknowledged. The native gains reputation and honor through merit. Good name and distinction follow naturally.",
	},
	{
		ID:               "jihua",
		Number:           4,
		Chinese:          "忌化",
		Pinyin:           "Ji Hua",
		English:          "Obstacle Transformation",
		Meaning:          "Represents obstacles, voids, and inner deficiencies that drive seeking and improvement",
		CharacterMeaning: "忌 (Ji) means obstacle, annoyance, impediment - challenges and troubles",
		Effects:          "Creates obstacles and challenges; represents inner voids; brings difficulties; motivates seeking fulfillment",
		PositiveEffects:  []string{"Motivation for achievement", "Driving ambition", "Obstacle overcoming builds character", "Pushes for improvement"},
		NegativeEffects:  []string{"Blocks manifestation of star qualities", "Creates obstacles in palace matters", "Brings bad luck and complications", "Losing what you have not yet possessed"},
		BestWith:         []string{"Most damaging transformation star", "Disrupts connection between native and subject matter"},
		Interpretation:   "When a star undergoes Ji Transformation, it becomes blocked or restricted. Inner void and dissatisfaction emerge. The native feels unfulfilled and driven to seek. Obstacles appear in manifesting the star's qualities. This transformation motivates action but creates challenges.",
	},
}
