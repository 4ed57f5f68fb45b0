package seed

import "ziwei-backend/domain/knowledge"

var beneficStars = []knowledge.BeneficStar{
	{
		ID:               "zuofu",
		Chinese:          "左輔",
		English:          "Zuofu / Left Benefactor",
		Meaning:          "Assistance with parental perspective",
		CharacterMeaning: "左 (Left) + 輔 (Assist) - Left-side assistance",
		Characteristic:   "Offers help as soon as need is recognized; assistance from higher or parental position; active and immediate support",
		Benefits:         []string{"Immediate assistance when needed", "Support from authority figures", "Parental-like guidance"},
		BestWith:         []string{"All major stars", "Enhances manifestation"},
		HouseBenefits:    []string{"Any palace benefits from Zuofu presence"},
		Interpretation:   "This star brings proactive assistance and support. Help comes readily when challenges appear. The native enjoys backing from superiors and benefactors. Zuofu ensures that resources and support are available when needed.",
	},
	{
		ID:               "youbi",
		Chinese:          "右弼",
		English:          "Youbi / Right Benefactor",
		Meaning:          "Gentle and subtle assistance",
		CharacterMeaning: "右 (Right) + 弼 (Assist) - Right-side assistance",
		Characteristic:   "More gentle than Zuofu; assistance often goes unnoticed; earns title of female benefactor; kind, considerate, empathetic",
		Benefits:         []string{"Subtle but continuous support", "Kind and considerate help", "Gentle guidance", "Empathetic assistance"},
		BestWith:         []string{"All major stars", "Works particularly well with softer stars"},
		HouseBenefits:    []string{"Any palace benefits from Youbi presence"},
		Interpretation:   "This star brings gentle, quiet support. Help arrives subtly and often goes unrecognized. The native finds allies and supporters everywhere. Youbi represents kindness in the universe working on behalf of the native.",
	},
	{
		ID:               "tiankui",
		Chinese:          "天魁",
		English:          "Tiankui / Heavenly Noble",
		Meaning:          "Noble assistance and leadership aura",
		CharacterMeaning: "天 (Heavenly) + 魁 (Chief/Leader) - Heavenly leader",
		Characteristic:   "Known as male benefactor; exudes leadership aura; help comes from recognition of need; higher-level support",
		Benefits:         []string{"Heavenly luck and blessings", "Noble assistance from high places", "Leadership recognition", "Exalted support"},
		BestWith:         []string{"Leadership and authority stars", "Enhances prestige"},
		HouseBenefits:    []string{"Career, authority, reputation palaces benefit most"},
		Interpretation:   "This star brings noble and heavenly assistance. Help comes from high places and exalted sources. The native is favored by the heavens and enjoys blessings from above. Recognition and honor follow naturally.",
	},
	{
		ID:               "tianyue",
		Chinese:          "天鉞",
		English:          "Tianyue / Heavenly Ax",
		Meaning:          "Assistance requiring active seeking",
		CharacterMeaning: "天 (Heavenly) + 鉞 (Ax/Weapon) - Heavenly power tool",
		Characteristic:   "Help not automatic; must actively seek assistance; requires initiative from native; sword cuts through obstacles",
		Benefits:         []string{"Problem-solving ability", "Cutting through obstacles", "Tools and resources available", "Active support when sought"},
		BestWith:         []string{"Action-oriented stars", "Initiative and courage"},
		HouseBenefits:    []string{"Career, finance, and action-oriented palaces benefit most"},
		Interpretation:   "This star brings assistance that requires active seeking. Resources and help are available but must be pursued. The native must take initiative to access support. Tianyue cuts through obstacles and clears the path forward.",
	},
}

var maleficStars = []knowledge.MaleficStar{
	{
		ID:               "huoxing",
		Chinese:          "火星",
		English:          "Huo Xing / Fire Star",
		Meaning:          "Brings impacts and sudden changes",
		CharacterMeaning: "火 (Fire) + 星 (Star) - Fire star",
		Characteristic:   "Increases twists and turns in life; brings variability and unexpected difficulties; hot and explosive nature",
		Effects:          []string{"Obstacles and setbacks", "Unexpected troubles", "Sudden changes", "Variable outcomes", "Instability"},
		Combinations:     []string{"Combined with beneficial stars: mitigated effect", "Combined with malefic stars: compounded problems"},
		HouseDamage:      []string{"Any palace is disrupted by Fire Star presence"},
		Interpretation:   "This star brings fiery obstacles and sudden disruptions. Plans are derailed by unexpected circumstances. The native faces unpredictable challenges that test resilience. Fire Star brings heat and turbulence to any palace.",
	},
	{
		ID:               "lingxing",
		Chinese:          "鈴星",
		English:          "Ling Xing / Sting Star",
		Meaning:          "Brings obstacles and disturbances",
		CharacterMeaning: "鈴 (Bell/Sting) + 星 (Star) - Stinging bell",
		Characteristic:   "Similar to Fire Star; increases twists and turns; brings pain and sting; creates disturbances and discord",
		Effects:          []string{"Obstacles and setbacks", "Painful experiences", "Disturbing influences", "Disruptive changes", "Complications"},
		Combinations:     []string{"Generally negative regardless of combination", "Severity depends on palace and other stars"},
		HouseDamage:      []string{"Any palace is compromised by Ling Star presence"},
		Interpretation:   "This star brings stinging pain and disturbances. What seems smooth becomes complicated. The native experiences setbacks and painful learnings. Ling Star represents the sting of consequences and reality checks.",
	},
	{
		ID:               "qiangyang",
		Chinese:          "羊刃",
		English:          "Qiangyang / Blade",
		Meaning:          "Represents conflicts and disputes",
		CharacterMeaning: "羊 (Sheep/Ram) + 刃 (Blade) - Cutting blade",
		Characteristic:   "Brings quarrels and conflicts; sharp nature causes wounds; creates discord and fighting; cutting and separation",
		Effects:          []string{"Quarrels and arguments", "Conflicts and disputes", "Sharp-tongued communications", "Cutting remarks and wounds", "Separation and division"},
		Combinations:     []string{"Exacerbates conflict-prone palaces", "Can indicate relationship breakdown"},
		HouseDamage:      []string{"Relationship palaces (Spouse, Friends) suffer most"},
		Interpretation:   "This star brings sharp words and cutting conflicts. Harmony is disrupted by arguments and disputes. The native faces quarrels and must defend their position. Blade represents the wounding power of sharp words and sharp actions.",
	},
	{
		ID:               "tuoluo",
		Chinese:          "陀羅",
		English:          "Tuoluo / Spinning",
		Meaning:          "Represents obstacles and entanglement",
		CharacterMeaning: "陀 (Spinning) + 羅 (Net/Trap) - Spinning net/trap",
		Characteristic:   "Creates entanglement and complications; blocks progress with spinning obstruction; traps and binding",
		Effects:          []string{"Entanglement and complications", "Progress blocked", "Spiraling problems", "Trapped situations", "Binding commitments"},
		Combinations:     []string{"Typically negative effect", "Can indicate karmic entanglement"},
		HouseDamage:      []string{"Creates stagnation in any palace it touches"},
		Interpretation:   "This star brings entanglement and binding situations. Progress is blocked by spinning complications. The native feels trapped and caught. Tuoluo represents the spiraling problems that keep one stuck and unable to move forward.",
	},
}
