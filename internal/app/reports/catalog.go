package reports

import "github.com/Masterminds/squirrel"

var catalog = map[Kind]*Definition{
	KindStudent:   studentReport,
	KindPayment:   paymentReport,
	KindTeacher:   teacherReport,
	KindCourse:    courseReport,
	KindDashboard: dashboardReport,
}

var studentReport = &Definition{
	Kind: KindStudent,
	Columns: []string{
		"id", "name", "father", "mother", "dob", "gender", "class", "phone", "email", "address",
	},
	From: "students",
	Filters: []FilterField{
		{Param: "class", Columns: []string{"class"}, Match: MatchExact},
		{Param: "gender", Columns: []string{"gender"}, Match: MatchExact},
		{Param: "search", Columns: []string{"name", "class"}, Match: MatchSubstring},
	},
	Sorts: []SortField{
		{Key: "name", Column: "name", Direction: Asc},
		{Key: "class", Column: "class", Direction: Asc},
		{Key: "phone", Column: "phone", Direction: Asc},
		{Key: "id", Column: "id", Direction: Asc},
	},
	DefaultSort: "name",
	Statistics: []Statistic{
		{Name: "totalStudents", Func: Count, Table: "students"},
		{Name: "maleCount", Func: Count, Table: "students", Where: squirrel.Eq{"gender": "Male"}},
		{Name: "femaleCount", Func: Count, Table: "students", Where: squirrel.Eq{"gender": "Female"}},
		{Name: "uniqueClasses", Func: CountDistinct, Column: "class", Table: "students"},
	},
}

var paymentReport = &Definition{
	Kind: KindPayment,
	Columns: []string{
		"f.id", "f.student_id", "s.name AS student_name", "f.amount", "f.payment_date",
		"f.status", "f.payment_method", "f.reference_no", "f.notes",
	},
	From:  "fees f",
	Joins: []string{"students s ON f.student_id = s.id"},
	Filters: []FilterField{
		{Param: "status", Columns: []string{"f.status"}, Match: MatchExact},
		{Param: "method", Columns: []string{"f.payment_method"}, Match: MatchExact},
		{Param: "search", Columns: []string{"s.name", "f.reference_no"}, Match: MatchSubstring},
	},
	Sorts: []SortField{
		{Key: "date", Column: "f.payment_date", Direction: Desc},
		{Key: "amount", Column: "f.amount", Direction: Desc},
		{Key: "student", Column: "s.name", Direction: Asc},
		{Key: "id", Column: "f.id", Direction: Desc},
	},
	DefaultSort: "date",
	Statistics: []Statistic{
		{Name: "totalPayments", Func: Count, Table: "fees"},
		{Name: "paidCount", Func: Count, Table: "fees", Where: squirrel.Eq{"status": "Paid"}},
		{Name: "pendingCount", Func: Count, Table: "fees", Where: squirrel.Eq{"status": "Pending"}},
		{Name: "totalRevenue", Func: Sum, Column: "amount", Table: "fees", Where: squirrel.Eq{"status": "Paid"}, Format: FormatMoney},
	},
}

var teacherReport = &Definition{
	Kind: KindTeacher,
	Columns: []string{
		"id", "name", "email", "phone", "dob", "gender", "qualification", "specialization",
		"experience", "address", "bio",
	},
	From: "teachers",
	Filters: []FilterField{
		{Param: "specialization", Columns: []string{"specialization"}, Match: MatchSubstring},
		{Param: "qualification", Columns: []string{"qualification"}, Match: MatchSubstring},
	},
	Sorts: []SortField{
		{Key: "name", Column: "name", Direction: Asc},
		{Key: "experience", Column: "experience", Direction: Desc},
		{Key: "id", Column: "id", Direction: Asc},
	},
	DefaultSort: "name",
	Statistics: []Statistic{
		{Name: "totalTeachers", Func: Count, Table: "teachers"},
		{Name: "averageExperience", Func: Avg, Column: "experience", Table: "teachers", Format: FormatRounded},
	},
}

var courseReport = &Definition{
	Kind: KindCourse,
	Columns: []string{
		"c.id", "c.course_name", "c.course_code", "c.teacher_id", "t.name AS teacher_name",
		"c.duration", "c.fee", "c.max_students", "c.status", "c.start_date",
	},
	From:  "courses c",
	Joins: []string{"teachers t ON c.teacher_id = t.id"},
	Filters: []FilterField{
		{Param: "status", Columns: []string{"c.status"}, Match: MatchExact},
	},
	Sorts: []SortField{
		{Key: "name", Column: "c.course_name", Direction: Asc},
		{Key: "fee", Column: "c.fee", Direction: Desc},
		{Key: "duration", Column: "c.duration", Direction: Asc},
		{Key: "id", Column: "c.id", Direction: Desc},
	},
	DefaultSort: "name",
	Statistics: []Statistic{
		{Name: "totalCourses", Func: Count, Table: "courses"},
		{Name: "activeCourses", Func: Count, Table: "courses", Where: squirrel.Eq{"status": "Active"}},
		{Name: "averageFee", Func: Avg, Column: "fee", Table: "courses", Format: FormatMoney},
	},
}

var today = squirrel.Expr("date = CURRENT_DATE")

// dashboardReport lists today's latest attendance marks next to the school-wide counters
var dashboardReport = &Definition{
	Kind:    KindDashboard,
	Columns: []string{"a.id", "a.student_id", "s.name AS student_name", "a.date", "a.status"},
	From:    "attendance a",
	Joins:   []string{"students s ON a.student_id = s.id"},
	Scope:   squirrel.Expr("a.date = CURRENT_DATE"),
	Sorts: []SortField{
		{Key: "date", Column: "a.date", Direction: Desc},
	},
	DefaultSort: "date",
	Limit:       5,
	Statistics: []Statistic{
		{Name: "totalStudents", Func: Count, Table: "students"},
		{Name: "pendingFees", Func: Count, Table: "fees", Where: squirrel.Eq{"status": "Pending"}},
		{Name: "presentToday", Func: Count, Table: "attendance", Where: squirrel.And{today, squirrel.Eq{"status": "Present"}}},
		{Name: "totalTeachers", Func: Count, Table: "teachers"},
		{Name: "totalCourses", Func: Count, Table: "courses"},
		{Name: "totalPayments", Func: Count, Table: "fees", Where: squirrel.Eq{"status": "Paid"}},
		{Name: "absentToday", Func: Count, Table: "attendance", Where: squirrel.And{today, squirrel.Eq{"status": "Absent"}}},
	},
}
