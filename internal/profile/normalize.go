package profile

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/park285/leetcode-profile-go/internal/leetcode"
)

// ErrMalformedResponse: 업스트림 응답을 Profile 로 변환할 수 없을 때 반환된다.
var ErrMalformedResponse = errors.New("malformed leetcode response")

// defaultStatusDisplay: recentAcSubmissionList 는 Accepted 제출만 담는다
const defaultStatusDisplay = "Accepted"

type rawUser struct {
	Username *string     `json:"username"`
	Profile  *rawProfile `json:"profile"`
}

type rawProfile struct {
	Ranking     *int64   `json:"ranking"`
	UserAvatar  *string  `json:"userAvatar"`
	RealName    *string  `json:"realName"`
	AboutMe     *string  `json:"aboutMe"`
	School      *string  `json:"school"`
	Websites    []string `json:"websites"`
	CountryName *string  `json:"countryName"`
	SkillTags   []string `json:"skillTags"`
	Reputation  *int64   `json:"reputation"`
	StarRating  *float64 `json:"starRating"`
}

type rawSubmitStat struct {
	Difficulty  *string `json:"difficulty"`
	Count       *int64  `json:"count"`
	Submissions *int64  `json:"submissions"`
}

type rawSubmission struct {
	ID            *int64  `json:"id"`
	Title         *string `json:"title"`
	TitleSlug     *string `json:"titleSlug"`
	StatusDisplay *string `json:"statusDisplay"`
	Lang          *string `json:"lang"`
	Timestamp     *int64  `json:"timestamp"`
}

// Normalize: 업스트림 원본 응답을 Profile 로 변환합니다.
// I/O 없이 동작하며 입력을 변경하지 않는다. 같은 입력에는 항상 같은 결과를 반환한다.
func Normalize(raw leetcode.RawPayload) (*Profile, error) {
	userValue, ok := raw["matchedUser"].(map[string]any)
	if !ok {
		return nil, malformed("matchedUser is not an object")
	}

	var user rawUser
	if err := decode(userValue, &user); err != nil {
		return nil, malformedErr("matchedUser", err)
	}

	username := ""
	if user.Username != nil {
		username = strings.TrimSpace(*user.Username)
	}
	if username == "" {
		return nil, malformed("username is missing")
	}

	stats, err := normalizeSubmitStats(userValue)
	if err != nil {
		return nil, err
	}
	submissions, err := normalizeSubmissions(raw["recentAcSubmissionList"])
	if err != nil {
		return nil, err
	}

	result := &Profile{
		Username:          username,
		Websites:          []string{},
		SkillTags:         []string{},
		SubmitStats:       stats,
		RecentSubmissions: submissions,
	}
	if p := user.Profile; p != nil {
		result.Ranking = p.Ranking
		result.Avatar = p.UserAvatar
		result.CountryName = p.CountryName
		result.Reputation = p.Reputation
		result.StarRating = p.StarRating
		result.AboutMe = p.AboutMe
		result.RealName = p.RealName
		result.School = p.School
		result.Websites = compactStrings(p.Websites)
		result.SkillTags = compactStrings(p.SkillTags)
	}
	return result, nil
}

func normalizeSubmitStats(user map[string]any) ([]SubmitStat, error) {
	value := user["submitStats"]
	if value == nil {
		value = user["submitStatsGlobal"]
	}

	var entries any
	switch v := value.(type) {
	case nil:
		return []SubmitStat{}, nil
	case map[string]any:
		entries = v["acSubmissionNum"]
	case []any:
		entries = v
	default:
		return nil, malformed("submitStats is not an object or list")
	}
	if entries == nil {
		return []SubmitStat{}, nil
	}
	list, ok := entries.([]any)
	if !ok {
		return nil, malformed("acSubmissionNum is not a list")
	}

	var decoded []rawSubmitStat
	if err := decode(list, &decoded); err != nil {
		return nil, malformedErr("acSubmissionNum", err)
	}

	stats := make([]SubmitStat, 0, len(canonicalDifficulties))
	seen := make(map[Difficulty]bool, len(canonicalDifficulties))
	for _, entry := range decoded {
		if entry.Difficulty == nil {
			continue
		}
		difficulty, known := ParseDifficulty(*entry.Difficulty)
		if !known || seen[difficulty] {
			continue
		}
		if entry.Count == nil || entry.Submissions == nil {
			return nil, malformed(fmt.Sprintf("submit stat %s is missing counts", difficulty))
		}
		count, submissions := *entry.Count, *entry.Submissions
		if count < 0 || submissions < count {
			return nil, malformed(fmt.Sprintf("submit stat %s has invalid counts %d/%d", difficulty, count, submissions))
		}
		seen[difficulty] = true
		stats = append(stats, SubmitStat{Difficulty: difficulty, Count: count, Submissions: submissions})
	}

	if len(stats) > 0 && !seen[DifficultyAll] {
		return nil, malformed("submit stats have no All entry")
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Difficulty.rank() < stats[j].Difficulty.rank()
	})
	return stats, nil
}

func normalizeSubmissions(value any) ([]Submission, error) {
	if value == nil {
		return []Submission{}, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, malformed("recentAcSubmissionList is not a list")
	}

	var decoded []rawSubmission
	if err := decode(list, &decoded); err != nil {
		return nil, malformedErr("recentAcSubmissionList", err)
	}

	submissions := make([]Submission, 0, len(decoded))
	for i, entry := range decoded {
		if entry.ID == nil || entry.Title == nil || entry.TitleSlug == nil || entry.Timestamp == nil {
			return nil, malformed(fmt.Sprintf("submission %d is missing required fields", i))
		}
		if *entry.Timestamp < 0 {
			return nil, malformed(fmt.Sprintf("submission %d has negative timestamp", i))
		}
		submission := Submission{
			ID:            *entry.ID,
			Title:         *entry.Title,
			TitleSlug:     strings.TrimSpace(*entry.TitleSlug),
			StatusDisplay: defaultStatusDisplay,
			Timestamp:     *entry.Timestamp,
		}
		if entry.StatusDisplay != nil {
			submission.StatusDisplay = *entry.StatusDisplay
		}
		if entry.Lang != nil {
			submission.Lang = *entry.Lang
		}
		submissions = append(submissions, submission)
	}

	sort.SliceStable(submissions, func(i, j int) bool {
		return submissions[i].Timestamp > submissions[j].Timestamp
	})
	return submissions, nil
}

func compactStrings(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func malformed(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, reason)
}

func malformedErr(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, field, err)
}
