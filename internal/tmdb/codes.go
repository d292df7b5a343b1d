package tmdb

// Display-label lookup tables carried over from the web front-end.
// Keys are the Korean UI labels; values are the wire-level codes.

// GenreCodes maps genre labels to TMDB genre IDs. "0" is the
// all-genres sentinel and emits no filter.
var GenreCodes = map[string]string{
	"장르 (전체)": "0",
	"액션":      "28",
	"모험":      "12",
	"애니메이션":   "16",
	"코미디":     "35",
	"범죄":      "80",
	"다큐멘터리":   "99",
	"드라마":     "18",
	"가족":      "10751",
	"판타지":     "14",
	"역사":      "36",
	"공포":      "27",
	"음악":      "10402",
	"미스터리":    "9648",
	"로맨스":     "10749",
	"SF":      "878",
	"TV 영화":   "10770",
	"스릴러":     "53",
	"전쟁":      "10752",
	"서부":      "37",
}

// LanguageCodes maps language labels to ISO 639-1 codes. The all-languages
// label maps to the empty string and emits no filter.
var LanguageCodes = map[string]string{
	"언어 (전체)": "",
	"한국어":     "ko",
	"영어":      "en",
	"일본어":     "ja",
	"중국어":     "zh",
	"프랑스어":    "fr",
	"독일어":     "de",
	"스페인어":    "es",
	"이탈리아어":   "it",
	"러시아어":    "ru",
}

// SortingCodes maps sort labels to TMDB sort_by values.
var SortingCodes = map[string]string{
	"정렬 (기본)":  "popularity.desc",
	"인기도 높은순": "popularity.desc",
	"인기도 낮은순": "popularity.asc",
	"평점 높은순":  "vote_average.desc,vote_count.desc",
	"평점 낮은순":  "vote_average.asc,vote_count.desc",
	"최신순":      "primary_release_date.desc",
	"오래된순":    "primary_release_date.asc",
	"수익 높은순":  "revenue.desc",
	"수익 낮은순":  "revenue.asc",
	"제목 오름차순": "original_title.asc",
	"제목 내림차순": "original_title.desc",
}

// CertificationCodes maps age-rating labels to certification values.
var CertificationCodes = map[string]string{
	"G (전체관람가)":    "G",
	"PG (12세 관람가)":  "PG",
	"PG-13 (15세 관람가)": "PG-13",
	"R (청소년관람불가)":  "R",
	"NC-17 (성인전용)":  "NC-17",
}

// runtimeRange holds the minute bounds for a named runtime bucket.
// A zero bound is absent and emits no parameter.
type runtimeRange struct {
	gte int
	lte int
}

// runtimeRanges maps runtime bucket labels to their bounds.
var runtimeRanges = map[string]runtimeRange{
	"60분 이하":   {lte: 60},
	"60-90분":   {gte: 60, lte: 90},
	"90-120분":  {gte: 90, lte: 120},
	"120-150분": {gte: 120, lte: 150},
	"150분 이상":  {gte: 150},
}
