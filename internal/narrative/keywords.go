// Keyword groups: English and Chinese substrings that mark a policy domain.
package narrative

import (
	"regexp"
	"strings"
)

// Keywords is a set of substrings; a text matches if it contains any of them.
type Keywords []string

// In reports whether text contains any keyword. text should be lower-cased.
func (k Keywords) In(text string) bool {
	for _, w := range k {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Content-selection groups.
var (
	kwRetail    = Keywords{"retail", "shipping", "delivery", "零售", "物流"}
	kwTourism   = Keywords{"tourism", "travel", "visitor", "旅遊", "遊客"}
	kwFood      = Keywords{"f&b", "food", "restaurant", "餐飲", "食物"}
	kwFintech   = Keywords{"fintech", "crypto", "web3", "blockchain", "金融科技"}
	kwTaxCarbon = Keywords{"tax", "carbon", "稅", "碳稅"}
	kwHousing   = Keywords{"housing", "public housing", "房屋", "公共房屋", "公屋"}
	kwTransport = Keywords{"transport", "mtr", "railway", "交通", "港鐵", "鐵路"}
	kwEnergy    = Keywords{"renewable", "environment", "green", "可再生", "環境", "綠色"}
	kwWelfare   = Keywords{"basic income", "welfare", "poverty", "基本收入", "福利", "貧困"}
)

// Complexity and affected-group categories.
var (
	kwTax            = Keywords{"tax", "稅"}
	kwRegulation     = Keywords{"regulation", "監管"}
	kwInfrastructure = Keywords{"infrastructure", "基礎設施"}
	kwEducation      = Keywords{"education", "教育"}
	kwHealthcare     = Keywords{"healthcare", "醫療"}
	kwEnvironment    = Keywords{"environment", "環境"}
	kwHousingCore    = Keywords{"housing", "房屋"}
	kwTransportCore  = Keywords{"transport", "交通"}
	kwWelfareCore    = Keywords{"welfare", "福利"}

	sectorWords = []string{"economic", "social", "environmental", "technological", "經濟", "社會", "環境", "技術"}
)

// Citizen-voice triggers.
var (
	kwTechVoice    = Keywords{"smart", "tech", "digital"}
	kwHousingVoice = Keywords{"housing", "房屋"}
	kwGreenVoice   = Keywords{"environment", "green"}
	kwFintechVoice = Keywords{"fintech", "金融科技"}
)

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	digitPattern   = regexp.MustCompile(`\d+`)
)
