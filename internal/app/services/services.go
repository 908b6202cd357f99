package services

// Services defined in this package:
// - ReportService: report pages, dashboard, search and report export
// - StudentService: student CRUD and spreadsheet import
// - TeacherService: teacher CRUD
// - CourseService: course CRUD
// - FeeService: fee payment CRUD
// - AttendanceService: daily attendance marks
// - MarkService: exam marks
