package domain

// DirectionTotal is the sum of count over every stored event of one direction.
type DirectionTotal struct {
	Direction string
	Total     int64
}

type HourlyTotal struct {
	Hour      string // local wall-clock hour, "2006-01-02 15:00:00"
	Direction string
	Count     int64
}

type Stats struct {
	Summary []DirectionTotal
	Hourly  []HourlyTotal
}
