package profile

import "strings"

// Difficulty: 문제 난이도 구분입니다.
type Difficulty string

// Difficulty 상수 목록.
const (
	DifficultyAll    Difficulty = "All"
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// canonicalDifficulties: submitStats 정렬 순서
var canonicalDifficulties = []Difficulty{
	DifficultyAll,
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

// ParseDifficulty: 대소문자를 구분하지 않고 난이도 이름을 해석합니다.
func ParseDifficulty(value string) (Difficulty, bool) {
	trimmed := strings.TrimSpace(value)
	for _, d := range canonicalDifficulties {
		if strings.EqualFold(trimmed, string(d)) {
			return d, true
		}
	}
	return "", false
}

func (d Difficulty) rank() int {
	for i, candidate := range canonicalDifficulties {
		if candidate == d {
			return i
		}
	}
	return len(canonicalDifficulties)
}

// Profile: 정규화된 LeetCode 공개 프로필입니다.
// 모든 필드는 항상 직렬화되며, 값이 없으면 null 또는 빈 배열이 된다.
type Profile struct {
	Username          string       `json:"username"`
	Ranking           *int64       `json:"ranking"`
	Avatar            *string      `json:"avatar"`
	CountryName       *string      `json:"countryName"`
	Reputation        *int64       `json:"reputation"`
	StarRating        *float64     `json:"starRating"`
	AboutMe           *string      `json:"aboutMe"`
	RealName          *string      `json:"realName"`
	School            *string      `json:"school"`
	Websites          []string     `json:"websites"`
	SkillTags         []string     `json:"skillTags"`
	SubmitStats       []SubmitStat `json:"submitStats"`
	RecentSubmissions []Submission `json:"recentSubmissions"`
}

// SubmitStat: 난이도별 해결 문제 수와 제출 수
type SubmitStat struct {
	Difficulty  Difficulty `json:"difficulty"`
	Count       int64      `json:"count"`
	Submissions int64      `json:"submissions"`
}

// Submission: 최근 Accepted 제출 한 건
type Submission struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	TitleSlug     string `json:"titleSlug"`
	StatusDisplay string `json:"statusDisplay"`
	Lang          string `json:"lang"`
	Timestamp     int64  `json:"timestamp"` // unix seconds
}
