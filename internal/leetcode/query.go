package leetcode

// GraphQL operation 이름
const (
	opUserPublicProfile   = "userPublicProfile"
	opRecentAcSubmissions = "recentAcSubmissions"
)

// 사용자가 없을 때 GraphQL errors[].message 에 담기는 문구 (소문자 비교)
var userMissingMarkers = []string{
	"does not exist",
	"user not found",
}

const userPublicProfileQuery = `query userPublicProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      userAvatar
      realName
      aboutMe
      school
      websites
      countryName
      skillTags
      reputation
      starRating
    }
    submitStats: submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
    }
  }
}`

const recentAcSubmissionsQuery = `query recentAcSubmissions($username: String!, $limit: Int!) {
  recentAcSubmissionList(username: $username, limit: $limit) {
    id
    title
    titleSlug
    statusDisplay
    lang
    timestamp
  }
}`

// graphQLRequest: GraphQL POST 본문
type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

// graphQLResponse: GraphQL 응답 본문. data 는 타입을 가정하지 않고 그대로 보관한다.
type graphQLResponse struct {
	Data   map[string]any `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}
