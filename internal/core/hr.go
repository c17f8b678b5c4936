package core

// Store 매장
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

var Stores = []Store{
	{ID: "busan_city", Name: "부천시청점", Address: "경기도 부천시 원미구"},
	{ID: "sangdong", Name: "상동점", Address: "경기도 부천시 상동"},
	{ID: "bucheon_station", Name: "부천역사점", Address: "경기도 부천시 역곡동"},
}

func IsValidStore(name string) bool {
	for _, s := range Stores {
		if s.ID == name || s.Name == name {
			return true
		}
	}
	return false
}

type WorkType string

const (
	WorkTypeRegular    WorkType = "regular"    // 정규근무
	WorkTypeOvertime   WorkType = "overtime"   // 초과근무
	WorkTypeSubstitute WorkType = "substitute" // 대타근무
)

type AttendanceStatus string

const (
	AttendanceNormal AttendanceStatus = "normal" // 정상
	AttendanceLate   AttendanceStatus = "late"   // 지각
	AttendanceEarly  AttendanceStatus = "early"  // 조퇴
	AttendanceAbsent AttendanceStatus = "absent" // 결근
)

type ContractType string

const (
	ContractFulltime  ContractType = "fulltime"
	ContractParttime  ContractType = "parttime"
	ContractIntern    ContractType = "intern"
	ContractTemporary ContractType = "temporary"
)

type ContractStatus string

const (
	ContractDrafted ContractStatus = "drafted"
	ContractSigned  ContractStatus = "signed"
)

type WageType string

const (
	WageHourly  WageType = "hourly"
	WageMonthly WageType = "monthly"
)

const (
	// 未填寫結束日期時的預設值
	ContractOpenEnded = "기간의 정함이 없음"
	// 공지 제목 기본값
	DefaultNoticeTitle = "공지사항"
	// 員工端公告顯示上限
	EmployeeNoticeLimit = 3
)
