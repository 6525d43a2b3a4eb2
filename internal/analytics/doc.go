// Package analytics 课程数据上的确定性统计：教室排期重叠、报名分析、需求趋势。
//
// 所有函数都是纯函数，输入为已从数据库读出的记录，不访问存储。
package analytics
