// Citizen voices: representative quotes keyed on score bands and keywords.
package narrative

// VoiceType is the stance a quote expresses.
type VoiceType string

const (
	VoiceSupport    VoiceType = "support"
	VoiceConcern    VoiceType = "concern"
	VoiceOpposition VoiceType = "opposition"
)

// Voice is one quoted citizen reaction.
type Voice struct {
	Type        VoiceType `json:"type"`
	Demographic string    `json:"demographic"`
	Quote       string    `json:"quote"`
}

type voiceText struct {
	demographic string
	quote       string
}

const (
	voiceTech          = "tech"
	voiceHousing       = "housing"
	voiceGreen         = "green"
	voiceSmallBusiness = "small_business"
	voiceTaxpayer      = "taxpayer"
	voiceRetiree       = "retiree"
	voiceBankingPro    = "banking_support"
	voiceBankingCon    = "banking_concern"
)

var voiceTexts = map[Locale]map[string]voiceText{
	English: {
		voiceTech: {"Tech Professional, Age 32",
			"This policy will put Hong Kong at the forefront of innovation. As someone working in tech, I see how digital transformation can improve efficiency and create new opportunities for young professionals like me."},
		voiceHousing: {"Young Family, Sha Tin",
			"Finally, a policy that addresses our housing crisis! My husband and I have been waiting for public housing for 6 years. This gives us hope that our children won't face the same struggles."},
		voiceGreen: {"Environmental Advocate, Age 28",
			"Climate change is real and Hong Kong needs to act now. This policy shows the government is serious about our environmental future. My generation will inherit this planet."},
		voiceSmallBusiness: {"Small Business Owner, Mong Kok",
			"I understand the need for change, but I'm worried about the costs. My restaurant has been struggling since the pandemic. Will there be support for small businesses like mine during this transition?"},
		voiceTaxpayer: {"Middle-aged Professional, Central",
			"Hong Kong's competitiveness comes from low taxes. This policy will drive businesses away and hurt our economy. We need to find other solutions that don't burden taxpayers."},
		voiceRetiree: {"Retiree, Tai Po",
			"I've lived in Hong Kong for 40 years and seen many policy changes. This seems rushed and unclear. The government should focus on basic services first before trying new experiments."},
		voiceBankingPro: {"Banking Executive, Age 45",
			"Hong Kong needs to embrace fintech to maintain its status as a financial hub. This policy could attract global talent and investment to our city."},
		voiceBankingCon: {"Banking Executive, Age 45",
			"While innovation is important, we must ensure proper regulation and consumer protection. The financial sector needs stability above all."},
	},
	Chinese: {
		voiceTech:          {"科技專業人士，32歲", "這項政策將讓香港站在創新前沿。作為科技工作者，我看到數字化轉型如何提高效率，為像我這樣的年輕專業人士創造新機會。"},
		voiceHousing:       {"年輕家庭，沙田", "終於有政策解決我們的房屋危機！我和丈夫已經等了6年公屋。這讓我們看到希望，我們的孩子不會面臨同樣的困難。"},
		voiceGreen:         {"環保倡議者，28歲", "氣候變化是真實的，香港需要立即行動。這項政策顯示政府對我們的環境未來是認真的。我們這一代將繼承這個星球。"},
		voiceSmallBusiness: {"小企業主，旺角", "我理解改變的需要，但我擔心成本。我的餐廳自疫情以來一直在掙扎。在這個轉型期間，會有對像我這樣的小企業的支持嗎？"},
		voiceTaxpayer:      {"中年專業人士，中環", "香港的競爭力來自低稅率。這項政策會趕走企業，損害我們的經濟。我們需要找到其他不會加重納稅人負擔的解決方案。"},
		voiceRetiree:       {"退休人士，大埔", "我在香港生活了40年，見過許多政策變化。這個似乎倉促且不清楚。政府應該先專注於基本服務，然後再嘗試新實驗。"},
		voiceBankingPro:    {"銀行高管，45歲", "香港需要擁抱金融科技以維持其金融中心地位。這項政策可以吸引全球人才和投資到我們的城市。"},
		voiceBankingCon:    {"銀行高管，45歲", "雖然創新很重要，但我們必須確保適當的監管和消費者保護。金融業最需要的是穩定。"},
	},
}

// Score bands for voice selection.
const (
	strongSupportAbove    = 0.7
	strongOppositionBelow = 0.3
)

// Voices picks representative quotes from the per-citizen scores.
// An empty score list yields only keyword-driven voices.
func Voices(ctx Context, scores []float64) []Voice {
	var supporters, moderates, opponents int
	for _, s := range scores {
		switch {
		case s > strongSupportAbove:
			supporters++
		case s < strongOppositionBelow:
			opponents++
		default:
			moderates++
		}
	}

	texts, ok := voiceTexts[ctx.Locale]
	if !ok {
		texts = voiceTexts[English]
	}
	voices := []Voice{}
	add := func(t VoiceType, key string) {
		v := texts[key]
		voices = append(voices, Voice{Type: t, Demographic: v.demographic, Quote: v.quote})
	}

	if supporters > 0 {
		if kwTechVoice.In(ctx.Policy) {
			add(VoiceSupport, voiceTech)
		}
		if kwHousingVoice.In(ctx.Policy) {
			add(VoiceSupport, voiceHousing)
		}
		if kwGreenVoice.In(ctx.Policy) {
			add(VoiceSupport, voiceGreen)
		}
	}

	if moderates > 0 {
		add(VoiceConcern, voiceSmallBusiness)
	}

	if opponents > 0 {
		if kwTax.In(ctx.Policy) {
			add(VoiceOpposition, voiceTaxpayer)
		} else {
			add(VoiceOpposition, voiceRetiree)
		}
	}

	if kwFintechVoice.In(ctx.Policy) {
		if ctx.Support > 50 {
			add(VoiceSupport, voiceBankingPro)
		} else {
			add(VoiceConcern, voiceBankingCon)
		}
	}
	return voices
}
