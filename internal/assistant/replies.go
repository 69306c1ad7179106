package assistant

import (
	"strconv"
	"strings"

	"github.com/FACorreiaa/finchat/internal/model"
)

// Canned reply texts and chip sets for the routing half of the assistant.

const (
	helpText = "Mình có thể giúp bạn:\n" +
		"• Ghi giao dịch nhanh: \"chi 50k ăn trưa\", \"thu nhập 2 triệu\"\n" +
		"• Tạo danh mục: \"tạo danh mục Du lịch\"\n" +
		"• Xem báo cáo chi tiêu theo tuần hoặc tháng\n" +
		"• Tham gia thử thách tiết kiệm"

	fallbackText = "Mình chưa hiểu ý bạn. Bạn thử một trong các lệnh dưới đây nhé."

	reportText = "Bạn xem báo cáo chi tiết tại trang Báo cáo. Mình có thể ghi thêm giao dịch mới cho bạn."

	challengeText = "Các thử thách đang mở nằm ở trang Thử thách. Tham gia để theo dõi tiến độ tiết kiệm nhé."

	categoryHintText = "Để tạo danh mục mới, nhắn: tạo danh mục <tên>. Ví dụ: tạo danh mục Du lịch."

	cancelledText = "Đã hủy. Bạn cần gì cứ nhắn mình nhé."

	dismissedText = "Đã bỏ qua. Bạn cần gì cứ nhắn mình nhé."

	confirmQuestion = "Bạn xác nhận chứ?"
)

var (
	rootChips    = []string{"Thêm chi tiêu", "Thêm thu nhập", "Xem báo cáo", "Tạo danh mục"}
	confirmChips = []string{"Xác nhận", "Hủy"}
)

// Phrase sets checked on normalized text. Normalization strips combining
// marks but leaves đ in place, so đ-spellings are listed alongside their
// ascii variants.
var (
	cancelPhrases = map[string]struct{}{
		"huy": {}, "huy bo": {}, "thoi": {}, "cancel": {},
		"dung lai": {}, "đung lai": {}, "bo qua": {},
	}
	affirmPhrases = map[string]struct{}{
		"co": {}, "ok": {}, "oke": {}, "dong y": {}, "đong y": {},
		"xac nhan": {}, "yes": {}, "y": {}, "dung": {}, "đung": {},
	}
	negativePhrases = map[string]struct{}{
		"khong": {}, "no": {}, "huy": {}, "thoi": {}, "bo qua": {},
	}

	// startFlowPhrases open the slot-filling dialog at the type step; they
	// name a transaction without disambiguating its direction.
	startFlowPhrases = map[string]struct{}{
		"them giao dich": {}, "giao dich moi": {}, "ghi chep": {}, "ghi giao dich": {},
	}
)

func inPhraseSet(normalized string, set map[string]struct{}) bool {
	_, ok := set[normalized]
	return ok
}

// formatVND renders a base-unit amount with dot thousand separators, the
// way the app displays currency ("50.000đ").
func formatVND(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + "đ"
}

// typeLabel is the user-facing name of a transaction type.
func typeLabel(tp model.TxType) string {
	if tp == model.TypeIncome {
		return "thu nhập"
	}
	return "chi tiêu"
}
