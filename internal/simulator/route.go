package simulator

// Stations is the ordered stop list of the simulated journey.  It bounds
// how many manifests may be generated: one per stop, including the first.
var Stations = []string{
	"New Delhi", "Mathura Jn", "Agra Cantt", "Gwalior", "Jhansi Jn",
	"Bhopal Jn", "Itarsi Jn", "Nagpur", "Wardha", "Sevagram",
	"Kazipet Jn", "Secunderabad", "Chennai Central",
}

// namePool assigns passenger names by seat index.  One name per seat in a
// full manifest.
var namePool = []string{
	"Arjun Sharma", "Priya Patel", "Rohan Mehta", "Kavya Singh", "Amit Kumar",
	"Sneha Rao", "Vijay Nair", "Deepika Joshi", "Rahul Gupta", "Ananya Das",
	"Suresh Iyer", "Meera Pillai", "Kiran Reddy", "Pooja Verma", "Nikhil Shah",
	"Lakshmi Menon", "Aditya Choudhury", "Suman Banerjee", "Ravi Tiwari", "Anita Mishra",
	"Tarun Bajaj", "Geeta Malhotra", "Sachin Yadav", "Rekha Saxena", "Mohan Tripathi",
	"Sunita Pandey", "Dinesh Srivastava", "Usha Krishnan", "Naresh Bose", "Kamala Swamy",
	"Harish Patil", "Savita Kulkarni", "Ramesh Desai", "Leela Nambiar", "Sunil Hegde",
	"Bharathi Gopal", "Venkat Raman", "Geetha Suresh", "Ajay Chauhan", "Nandini Roy",
}

// routePairs are the boarding/destination combinations a simulated
// passenger can hold; one is drawn uniformly per seat.
var routePairs = [][2]string{
	{"Agra Cantt", "Chennai Central"}, {"Bhopal Jn", "Chennai Central"},
	{"New Delhi", "Nagpur"}, {"Gwalior", "Secunderabad"}, {"Mathura Jn", "Wardha"},
	{"New Delhi", "Chennai Central"}, {"Jhansi Jn", "Kazipet Jn"}, {"Itarsi Jn", "Chennai Central"},
}
