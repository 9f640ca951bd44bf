package mysql

import (
	"strings"
)

// likeEscapeChar LIKE转义字符
// 说明:不使用反斜杠,MySQL字符串字面量会把'\'当作转义前缀,而SQLite要求ESCAPE是单个字符
const likeEscapeChar = "!"

// likeEscaper 转义LIKE通配符,让关键词按字面匹配
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// containsPattern 构造"包含"匹配模式(小写)
// 例如:"50%_Off" → "%50!%!_off%"
func containsPattern(keyword string) string {
	// 注意:strings.ToLower按Unicode折叠,而SQLite内置LOWER只折叠ASCII。
	// SQLite上LOWER('Émile')仍是'Émile',非ASCII大写字母的书名/作者搜不到;MySQL按排序规则折叠,无此问题
	return "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"
}
