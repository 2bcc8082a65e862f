package catalog

import "github.com/example/vocabtrainer/pkg/models"

// LanguagePair describes one supported study direction
type LanguagePair struct {
	Code string
	Name string
}

// LanguagePairs lists the supported study directions
var LanguagePairs = []LanguagePair{
	{Code: "cs-vi", Name: "Czech → Vietnamese"},
	{Code: "vi-zh", Name: "Vietnamese → Chinese"},
	{Code: "vi-en", Name: "Vietnamese → English"},
}

// ValidPair reports whether code is a supported language pair
func ValidPair(code string) bool {
	for _, p := range LanguagePairs {
		if p.Code == code {
			return true
		}
	}
	return false
}

// Fallback is the bundled vocabulary used when the external library
// cannot be fetched
var Fallback = map[string][]models.Word{
	"cs-vi": {
		{ID: 1, Word: "ahoj", Translation: "xin chào", Romanization: "sin chào", Category: "greetings", Difficulty: 1},
		{ID: 2, Word: "děkuji", Translation: "cảm ơn", Romanization: "cảm ơn", Category: "greetings", Difficulty: 1},
		{ID: 41, Word: "prosím", Translation: "làm ơn", Romanization: "làm ơn", Category: "greetings", Difficulty: 1},
		{ID: 42, Word: "promiňte", Translation: "xin lỗi", Romanization: "sin lỗi", Category: "greetings", Difficulty: 1},
		{ID: 43, Word: "nashledanou", Translation: "tạm biệt", Romanization: "tạm biệt", Category: "greetings", Difficulty: 1},
		{ID: 3, Word: "ano", Translation: "vâng", Romanization: "vâng", Category: "basics", Difficulty: 1},
		{ID: 4, Word: "ne", Translation: "không", Romanization: "không", Category: "basics", Difficulty: 1},
		{ID: 15, Word: "dům", Translation: "nhà", Romanization: "nhà", Category: "basics", Difficulty: 1},
		{ID: 16, Word: "škola", Translation: "trường học", Romanization: "trường học", Category: "basics", Difficulty: 2},
		{ID: 17, Word: "kniha", Translation: "sách", Romanization: "sách", Category: "basics", Difficulty: 2},
		{ID: 20, Word: "práce", Translation: "công việc", Romanization: "công việc", Category: "basics", Difficulty: 2},
		{ID: 7, Word: "jeden", Translation: "một", Romanization: "một", Category: "numbers", Difficulty: 1},
		{ID: 8, Word: "dva", Translation: "hai", Romanization: "hai", Category: "numbers", Difficulty: 1},
		{ID: 9, Word: "tři", Translation: "ba", Romanization: "ba", Category: "numbers", Difficulty: 1},
		{ID: 10, Word: "čtyři", Translation: "bốn", Romanization: "bốn", Category: "numbers", Difficulty: 2},
		{ID: 11, Word: "pět", Translation: "năm", Romanization: "năm", Category: "numbers", Difficulty: 2},
		{ID: 12, Word: "rodina", Translation: "gia đình", Romanization: "gia đình", Category: "family", Difficulty: 2},
		{ID: 13, Word: "matka", Translation: "mẹ", Romanization: "mẹ", Category: "family", Difficulty: 1},
		{ID: 14, Word: "otec", Translation: "bố", Romanization: "bố", Category: "family", Difficulty: 1},
		{ID: 5, Word: "voda", Translation: "nước", Romanization: "nước", Category: "food", Difficulty: 1},
		{ID: 6, Word: "chléb", Translation: "bánh mì", Romanization: "bánh mì", Category: "food", Difficulty: 2},
	},
	"vi-zh": {
		{ID: 21, Word: "xin chào", Translation: "你好", Romanization: "nǐ hǎo", Category: "greetings", Difficulty: 1},
		{ID: 22, Word: "cảm ơn", Translation: "谢谢", Romanization: "xiè xie", Category: "greetings", Difficulty: 1},
		{ID: 23, Word: "một", Translation: "一", Romanization: "yī", Category: "numbers", Difficulty: 1},
		{ID: 24, Word: "hai", Translation: "二", Romanization: "èr", Category: "numbers", Difficulty: 1},
		{ID: 25, Word: "ba", Translation: "三", Romanization: "sān", Category: "numbers", Difficulty: 1},
		{ID: 26, Word: "nước", Translation: "水", Romanization: "shuǐ", Category: "food", Difficulty: 1},
		{ID: 27, Word: "cơm", Translation: "米饭", Romanization: "mǐ fàn", Category: "food", Difficulty: 2},
		{ID: 28, Word: "gia đình", Translation: "家庭", Romanization: "jiā tíng", Category: "family", Difficulty: 2},
		{ID: 29, Word: "mẹ", Translation: "妈妈", Romanization: "mā ma", Category: "family", Difficulty: 1},
		{ID: 30, Word: "bố", Translation: "爸爸", Romanization: "bà ba", Category: "family", Difficulty: 1},
	},
	"vi-en": {
		{ID: 31, Word: "xin chào", Translation: "hello", Category: "greetings", Difficulty: 1},
		{ID: 32, Word: "cảm ơn", Translation: "thank you", Category: "greetings", Difficulty: 1},
		{ID: 33, Word: "một", Translation: "one", Category: "numbers", Difficulty: 1},
		{ID: 34, Word: "hai", Translation: "two", Category: "numbers", Difficulty: 1},
		{ID: 35, Word: "ba", Translation: "three", Category: "numbers", Difficulty: 1},
		{ID: 36, Word: "nước", Translation: "water", Category: "food", Difficulty: 1},
		{ID: 37, Word: "bánh mì", Translation: "bread", Category: "food", Difficulty: 1},
		{ID: 38, Word: "gia đình", Translation: "family", Category: "family", Difficulty: 1},
		{ID: 39, Word: "nhà", Translation: "house", Category: "basics", Difficulty: 1},
		{ID: 40, Word: "trường học", Translation: "school", Category: "basics", Difficulty: 2},
	},
}
