package catalog

import "TimeTrader/internal/model"

// Default returns the built-in game catalog.
func Default() *Catalog {
	return &Catalog{
		classes:    defaultClasses,
		questions:  defaultQuestions,
		indicators: defaultIndicators,
		dungeons:   defaultDungeons,
		difficultyLabels: map[model.Difficulty]string{
			model.DifficultyEasy:      "初級",
			model.DifficultyNormal:    "中級",
			model.DifficultyHard:      "上級",
			model.DifficultyLegendary: "伝説",
		},
		difficultyColors: map[model.Difficulty]string{
			model.DifficultyEasy:      "#10B981",
			model.DifficultyNormal:    "#F59E0B",
			model.DifficultyHard:      "#EF4444",
			model.DifficultyLegendary: "#A855F7",
		},
	}
}

var defaultClasses = []ClassInfo{
	{
		ID:            model.ClassHero,
		Name:          "Hero",
		JapaneseName:  "勇者",
		Description:   "王道の成長株を狙う、順張り・長期投資家。トレンドに乗って大きな利益を目指す。",
		Color:         "#FFD700",
		Icon:          "⚔️",
		TradingStyle:  "順張り・長期",
		InitialSkills: []string{"トレンドフォロー基礎", "移動平均線（基本）"},
	},
	{
		ID:            model.ClassRogue,
		Name:          "Rogue",
		JapaneseName:  "盗賊",
		Description:   "リバウンド狙いの敏捷なトレーダー。逆張り・短期で素早く利益を確定する。",
		Color:         "#A855F7",
		Icon:          "🗡️",
		TradingStyle:  "逆張り・短期",
		InitialSkills: []string{"リバウンド検知", "RSI（基本）"},
	},
	{
		ID:            model.ClassSage,
		Name:          "Sage",
		JapaneseName:  "賢者",
		Description:   "業績分析を重視する知的投資家。ファンダメンタルズに基づいた堅実な投資を行う。",
		Color:         "#3B82F6",
		Icon:          "📖",
		TradingStyle:  "ファンダメンタル重視",
		InitialSkills: []string{"業績分析基礎", "PER/PBR分析"},
	},
}

var defaultQuestions = []Question{
	{
		ID:       0,
		Question: "投資で最も重要だと思うことは？",
		Options: []Option{
			{Text: "大きなトレンドに乗ること", Scores: map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 0, model.ClassSage: 1}},
			{Text: "素早く利益を確定すること", Scores: map[model.PlayerClass]int{model.ClassHero: 0, model.ClassRogue: 3, model.ClassSage: 1}},
			{Text: "企業の本質的価値を見極めること", Scores: map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 0, model.ClassSage: 3}},
		},
	},
	{
		ID:       1,
		Question: "株価が急落したとき、あなたはどうする？",
		Options: []Option{
			{Text: "様子を見て、回復を待つ", Scores: map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 0, model.ClassSage: 2}},
			{Text: "チャンス！買い増しを検討", Scores: map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 3, model.ClassSage: 1}},
			{Text: "企業の業績を再確認する", Scores: map[model.PlayerClass]int{model.ClassHero: 0, model.ClassRogue: 1, model.ClassSage: 3}},
		},
	},
	{
		ID:       2,
		Question: "理想的な投資期間は？",
		Options: []Option{
			{Text: "1年以上の長期保有", Scores: map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 0, model.ClassSage: 2}},
			{Text: "数日〜数週間の短期", Scores: map[model.PlayerClass]int{model.ClassHero: 0, model.ClassRogue: 3, model.ClassSage: 0}},
			{Text: "業績次第で柔軟に判断", Scores: map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 1, model.ClassSage: 3}},
		},
	},
	{
		ID:       3,
		Question: "投資判断で最も参考にするのは？",
		Options: []Option{
			{Text: "チャートのトレンドライン", Scores: map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 2, model.ClassSage: 0}},
			{Text: "出来高と価格の乖離", Scores: map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 3, model.ClassSage: 0}},
			{Text: "決算書と財務諸表", Scores: map[model.PlayerClass]int{model.ClassHero: 0, model.ClassRogue: 0, model.ClassSage: 3}},
		},
	},
	{
		ID:       4,
		Question: "リスクに対する考え方は？",
		Options: []Option{
			{Text: "リスクを取って大きなリターンを狙う", Scores: map[model.PlayerClass]int{model.ClassHero: 3, model.ClassRogue: 2, model.ClassSage: 0}},
			{Text: "小さな利益を積み重ねる", Scores: map[model.PlayerClass]int{model.ClassHero: 0, model.ClassRogue: 3, model.ClassSage: 1}},
			{Text: "リスクを最小化して安定を重視", Scores: map[model.PlayerClass]int{model.ClassHero: 1, model.ClassRogue: 0, model.ClassSage: 3}},
		},
	},
}

var defaultIndicators = []IndicatorDef{
	{
		ID:            "line-chart",
		Name:          "折れ線グラフ",
		RPGName:       "ひのきの棒",
		Description:   "基本的な価格推移を表示。すべての冒険者が最初に手にする武器。",
		RequiredLevel: 1,
		Type:          "weapon",
		StartUnlocked: true,
		StartEquipped: true,
	},
	{
		ID:            "candlestick",
		Name:          "ローソク足チャート",
		RPGName:       "銅の剣",
		Description:   "始値・終値・高値・安値を一目で把握。より詳細な分析が可能に。",
		RequiredLevel: 2,
		Type:          "weapon",
	},
	{
		ID:            "moving-average",
		Name:          "移動平均線",
		RPGName:       "ホイミの杖",
		Description:   "価格のトレンドを滑らかに表示。トレンドの方向性を把握できる。",
		RequiredLevel: 5,
		Type:          "skill",
	},
	{
		ID:            "macd",
		Name:          "MACD",
		RPGName:       "メラゾーマの杖",
		Description:   "トレンドの強さと転換点を検出。上級者向けの強力な武器。",
		RequiredLevel: 10,
		Type:          "skill",
	},
	{
		ID:            "rsi",
		Name:          "RSI",
		RPGName:       "氷の剣",
		Description:   "買われすぎ・売られすぎを判定。逆張りの強い味方。",
		RequiredLevel: 10,
		Type:          "weapon",
	},
	{
		ID:            "bollinger",
		Name:          "ボリンジャーバンド",
		RPGName:       "雷神の槌",
		Description:   "価格の変動範囲を予測。ボラティリティを視覚化。",
		RequiredLevel: 15,
		Type:          "weapon",
	},
}

var defaultDungeons = []model.Dungeon{
	{
		ID:               "tutorial-1",
		Name:             "初心者の洞窟",
		Symbol:           "DEMO",
		StartDate:        "2023-01-01",
		EndDate:          "2023-01-31",
		Difficulty:       model.DifficultyEasy,
		RecommendedLevel: 1,
		XPReward:         100,
		GoldReward:       500,
		Description:      "穏やかな上昇トレンド。トレードの基本を学ぼう。",
	},
	{
		ID:               "forest-1",
		Name:             "迷いの森",
		Symbol:           "TECH",
		StartDate:        "2023-03-01",
		EndDate:          "2023-03-31",
		Difficulty:       model.DifficultyEasy,
		RecommendedLevel: 2,
		XPReward:         150,
		GoldReward:       750,
		Description:      "小さな上下を繰り返すレンジ相場。タイミングを見極めよう。",
	},
	{
		ID:               "mountain-1",
		Name:             "試練の山",
		Symbol:           "GROW",
		StartDate:        "2023-06-01",
		EndDate:          "2023-06-30",
		Difficulty:       model.DifficultyNormal,
		RecommendedLevel: 5,
		XPReward:         300,
		GoldReward:       1500,
		Description:      "急上昇と急落が混在。冷静な判断力が試される。",
	},
	{
		ID:               "castle-1",
		Name:             "魔王の城",
		Symbol:           "BOSS",
		StartDate:        "2020-03-01",
		EndDate:          "2020-03-31",
		Difficulty:       model.DifficultyHard,
		RecommendedLevel: 10,
		XPReward:         500,
		GoldReward:       3000,
		Description:      "コロナショック。歴史的な暴落を乗り越えられるか？",
	},
	{
		ID:               "abyss-1",
		Name:             "深淵の迷宮",
		Symbol:           "LEGEND",
		StartDate:        "2022-01-01",
		EndDate:          "2022-03-31",
		Difficulty:       model.DifficultyLegendary,
		RecommendedLevel: 15,
		XPReward:         1000,
		GoldReward:       10000,
		Description:      "3ヶ月の長期戦。真の投資家だけが生き残る。",
	},
}
