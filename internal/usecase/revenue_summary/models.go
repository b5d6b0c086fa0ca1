package revenue_summary

import "time"

// Request модель запроса сводки выручки.
// Date - опорная дата: все четыре периода вычисляются относительно нее
type Request struct {
	Date time.Time
}

// Bucket выручка и количество завершенных бронирований за период
type Bucket struct {
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

// Response сводка выручки за день, неделю, месяц и год, содержащие
// опорную дату. Неделя начинается с понедельника
type Response struct {
	Date  string `json:"date"`
	Day   Bucket `json:"day"`
	Week  Bucket `json:"week"`
	Month Bucket `json:"month"`
	Year  Bucket `json:"year"`
}
