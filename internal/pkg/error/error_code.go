package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 40099: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY    = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS  = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS = 40002 // 400 - 無效的請求標頭
	INVALID_WORK_RECORD = 40003 // 400 - 出勤時間格式錯誤或下班早於上班

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED    = 40100 // 401 - 未授權
	INVALID_SESSION = 40101 // 401 - 會話失效
	FORBIDDEN       = 40301 // 403 - 禁止訪問

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 狀態衝突 (409 系列)
	CONFLICT            = 40900 // 409 - 資料衝突
	ALREADY_CLOCKED_IN  = 40901 // 409 - 今日已上班打卡
	NOT_CLOCKED_IN      = 40902 // 409 - 尚未上班打卡
	ALREADY_CLOCKED_OUT = 40903 // 409 - 今日已下班打卡
	ALREADY_SIGNED      = 40904 // 409 - 合約已簽署

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
	CONFIGURATION_ERROR = 50003 // 500 - 設定缺漏

	// 50200 ~ 50499: 外部服務錯誤 (502 系列)
	IDENTITY_PROVIDER_ERROR = 50200 // 502 - 身份服務呼叫失敗
)
