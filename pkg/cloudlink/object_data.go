package cloudlink

// ObjectData CloudLink가 저장된 항목을 돌려줄 때 사용하는 공통 봉투(envelope)입니다.
//
// UID가 비어 있으면 해당 항목이 존재하지 않음을 의미합니다.
// Payload는 항목의 JSON 텍스트이며, 문자열 값은 {"v": "..."} 형태로 감싸져 있습니다.
type ObjectData struct {
	UID     string `json:"uid"`
	Payload string `json:"payload"`
}

// Exists 봉투가 실제로 존재하는 항목을 담고 있는지 여부를 반환합니다.
func (d ObjectData) Exists() bool {
	return d.UID != ""
}
