package recipe

import (
	"time"

	"ajibaa/internal/pkg/common"
)

const day = 24 * time.Hour

// SeedRecipes 組み込みの郷土料理データセット
// リモート取得元が使えない環境でも検索・閲覧が動くようにする。
func SeedRecipes() []common.Recipe {
	now := time.Now()
	ms := func(d time.Duration) int64 { return now.Add(-d).UnixMilli() }

	return []common.Recipe{
		{
			ID:          "seed-takikomi",
			Title:       "おばあちゃんの炊き込みご飯",
			Description: "昔から家族に愛され続けている、心温まる炊き込みご飯のレシピです。季節の野菜と出汁の旨味が米に染み込んで、とても美味しいです。",
			Story:       "この炊き込みご飯は、私が子供の頃から母が作ってくれていた思い出の味です。戦後の食べ物が少ない時代に、少しでも栄養のあるものをと工夫して作られたレシピが始まりでした。今では孫たちにも受け継がれ、家族の絆を深める大切な料理となっています。",
			AuthorID:    "seed-user1",
			AuthorName:  "田中花子",
			Prefecture:  "新潟県",
			Category:    "ご飯もの",
			CookingTime: 60,
			Season:      []string{"春", "秋"},
			Tags:        []string{"家庭料理", "郷土料理", "おふくろの味", "炊き込みご飯"},
			ImageURL:    "/images/takikomi-gohan.jpg",
			Ingredients: []common.RecipeIngredient{
				{Name: "米", Amount: "2", Unit: "合", Note: "新潟産コシヒカリがおすすめ", Order: 1},
				{Name: "具材（鶏肉、人参、ごぼう、こんにゃく等）", Amount: "適量", Note: "地域の特産品を使うと良い", Order: 2},
				{Name: "醤油", Amount: "大さじ3", Note: "地元の醤油を使用", Order: 3},
				{Name: "みりん", Amount: "大さじ2", Order: 4},
				{Name: "砂糖", Amount: "大さじ1", Order: 5},
				{Name: "だし汁", Amount: "適量", Note: "昆布と鰹節でとった出汁", Order: 6},
			},
			Steps: []common.RecipeStep{
				{StepNumber: 1, Instruction: "米をといで30分以上水に浸します。", Tips: "水に浸すことでふっくらと炊き上がります。"},
				{StepNumber: 2, Instruction: "具材を食べやすい大きさに切ります。鶏肉は一口大、野菜は薄切りにします。", Tips: "火の通りを均一にするため、大きさを揃えましょう。"},
				{StepNumber: 3, Instruction: "鍋で具材を炒め、調味料（醤油、みりん、砂糖）を加えて煮詰めます。", Tips: "具材から出る旨味を大切にしてください。"},
				{StepNumber: 4, Instruction: "炊飯器に米と煮た具材、だし汁を入れて炊きます。", Tips: "水分量は普通の炊飯と同じくらいで大丈夫です。"},
				{StepNumber: 5, Instruction: "炊き上がったら10分程度蒸らしてから、よく混ぜて完成です。", Tips: "混ぜる時は優しく、米粒を潰さないように注意してください。"},
			},
			IsPublished: true,
			ViewCount:   1240,
			LikeCount:   89,
			CreatedAt:   ms(30 * day),
			UpdatedAt:   ms(7 * day),
		},
		{
			ID:          "seed-senbeijiru",
			Title:       "青森のせんべい汁",
			Description: "青森県の郷土料理として親しまれているせんべい汁。南部せんべいが汁に溶け込んで、とろみのある優しい味になります。",
			Story:       "祖母が青森出身で、冬の寒い日によく作ってくれました。南部せんべいを割って入れるのが子供の頃の楽しみでした。",
			AuthorID:    "seed-user2",
			AuthorName:  "佐藤みち子",
			Prefecture:  "青森県",
			Category:    "汁物",
			CookingTime: 30,
			Season:      []string{"冬"},
			Tags:        []string{"郷土料理", "せんべい汁", "青森", "温まる"},
			ImageURL:    "/images/senbei-jiru.jpg",
			IsPublished: true,
			ViewCount:   856,
			LikeCount:   64,
			CreatedAt:   ms(14 * day),
			UpdatedAt:   ms(3 * day),
		},
		{
			ID:          "seed-ringoni",
			Title:       "りんご煮",
			Description: "青森のりんごを使った素朴なおやつ。砂糖と少しの塩で煮るだけで、果物の甘みが引き立ちます。",
			Story:       "りんご農家だった祖父母の家では、傷のついたりんごをこうして煮て食べさせてくれました。",
			AuthorID:    "seed-user2",
			AuthorName:  "佐藤みち子",
			Prefecture:  "青森県",
			Category:    "おやつ・デザート",
			CookingTime: 20,
			Season:      []string{"秋", "冬"},
			Tags:        []string{"おやつ", "りんご", "郷土料理"},
			ImageURL:    "/images/ringo-ni.jpg",
			Ingredients: []common.RecipeIngredient{
				{Name: "りんご", Amount: "2", Unit: "個", Order: 1},
				{Name: "砂糖", Amount: "大さじ2", Order: 2},
				{Name: "塩", Amount: "ひとつまみ", Order: 3},
			},
			Steps: []common.RecipeStep{
				{StepNumber: 1, Instruction: "りんごを皮ごとくし切りにします。"},
				{StepNumber: 2, Instruction: "鍋にりんごと砂糖、塩を入れ、弱火でしんなりするまで煮ます。", Tips: "焦げやすいので時々混ぜてください。"},
			},
			IsPublished: true,
			ViewCount:   432,
			LikeCount:   51,
			CreatedAt:   ms(10 * day),
			UpdatedAt:   ms(10 * day),
		},
		{
			ID:          "seed-okonomiyaki",
			Title:       "大阪のお好み焼き",
			Description: "キャベツたっぷり、ふわふわ生地の関西風お好み焼き。家庭ごとに配合が違うのが面白いところです。",
			Story:       "大阪の実家では週末の昼はいつもお好み焼きでした。ホットプレートを囲むのが家族の時間でした。",
			AuthorID:    "seed-user3",
			AuthorName:  "山本正雄",
			Prefecture:  "大阪府",
			Category:    "主食",
			CookingTime: 40,
			Season:      []string{"通年"},
			Tags:        []string{"粉もの", "家庭料理", "お好み焼き"},
			ImageURL:    "/images/okonomiyaki.jpg",
			Ingredients: []common.RecipeIngredient{
				{Name: "キャベツ", Amount: "1/4", Unit: "玉", Order: 1},
				{Name: "小麦粉", Amount: "100", Unit: "g", Order: 2},
				{Name: "卵", Amount: "1", Unit: "個", Order: 3},
				{Name: "豚バラ肉", Amount: "100", Unit: "g", Order: 4},
			},
			Steps: []common.RecipeStep{
				{StepNumber: 1, Instruction: "キャベツを粗めのみじん切りにします。"},
				{StepNumber: 2, Instruction: "小麦粉と卵、だし汁を混ぜて生地を作り、キャベツを加えます。", Tips: "混ぜすぎないのがふわふわのコツです。"},
				{StepNumber: 3, Instruction: "豚バラをのせて両面をこんがり焼きます。"},
			},
			IsPublished: true,
			ViewCount:   2103,
			LikeCount:   142,
			CreatedAt:   ms(45 * day),
			UpdatedAt:   ms(20 * day),
		},
		{
			ID:          "seed-zangi",
			Title:       "北海道のザンギ",
			Description: "下味をしっかりつけた北海道流の唐揚げ。冷めても美味しいのでお弁当にもぴったりです。",
			Story:       "釧路で生まれ育った母の得意料理です。醤油と生姜の下味が決め手だと教わりました。",
			AuthorID:    "seed-user4",
			AuthorName:  "鈴木恵子",
			Prefecture:  "北海道",
			Category:    "副菜",
			CookingTime: 35,
			Season:      []string{"通年"},
			Tags:        []string{"揚げ物", "鶏肉", "郷土料理", "ザンギ"},
			ImageURL:    "/images/zangi.jpg",
			Ingredients: []common.RecipeIngredient{
				{Name: "鶏もも肉", Amount: "300", Unit: "g", Order: 1},
				{Name: "醤油", Amount: "大さじ2", Order: 2},
				{Name: "生姜", Amount: "1", Unit: "かけ", Order: 3},
				{Name: "片栗粉", Amount: "適量", Order: 4},
			},
			Steps: []common.RecipeStep{
				{StepNumber: 1, Instruction: "鶏肉を一口大に切り、醤油とすりおろした生姜に30分漬けます。", Tips: "しっかり漬けるほど味が染みます。"},
				{StepNumber: 2, Instruction: "片栗粉をまぶして170度の油でカラッと揚げます。"},
			},
			IsPublished: true,
			ViewCount:   1587,
			LikeCount:   118,
			CreatedAt:   ms(5 * day),
			UpdatedAt:   ms(2 * day),
		},
		{
			ID:          "seed-hiyajiru",
			Title:       "宮崎の冷や汁",
			Description: "焼いた味噌と魚のすり身を冷たい出汁でのばし、ご飯にかけて食べる夏の定番。食欲のない日でもさらさら食べられます。",
			Story:       "夏の農作業の合間に、祖母が井戸水で冷やして出してくれた味です。",
			AuthorID:    "seed-user5",
			AuthorName:  "黒木文代",
			Prefecture:  "宮崎県",
			Category:    "汁物",
			CookingTime: 25,
			Season:      []string{"夏"},
			Tags:        []string{"郷土料理", "冷や汁", "夏バテ対策"},
			ImageURL:    "/images/hiyajiru.jpg",
			IsPublished: true,
			ViewCount:   693,
			LikeCount:   47,
			CreatedAt:   ms(60 * day),
			UpdatedAt:   ms(60 * day),
		},
		{
			ID:          "seed-draft-test",
			Title:       "下書き中の味噌おでん",
			Description: "まだ調整中のレシピです。",
			AuthorID:    "seed-user3",
			AuthorName:  "山本正雄",
			Prefecture:  "愛知県",
			Category:    "鍋もの",
			CookingTime: 50,
			Season:      []string{"冬"},
			Tags:        []string{"煮物"},
			IsPublished: false,
			CreatedAt:   ms(1 * day),
			UpdatedAt:   ms(1 * day),
		},
	}
}
