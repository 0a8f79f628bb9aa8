package maze

// ClassicBoard is the movement grid; '.' marks open ground
// Row 0 is the top of the screen (y = BoardHeight-1)
const ClassicBoard = "" +
	"____________________________" +
	"____________________________" +
	"____________________________" +
	"||||||||||||||||||||||||||||" +
	"|............||............|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|.|__|.|___|.||.|___|.|__|.|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|..........................|" +
	"|.||||.||.||||||||.||.||||.|" +
	"|.||||.||.||||||||.||.||||.|" +
	"|......||....||....||......|" +
	"||||||.|||||.||.|||||.||||||" +
	"_____|.|||||.||.|||||.|_____" +
	"_____|.||..........||.|_____" +
	"_____|.||.|||--|||.||.|_____" +
	"||||||.||.|______|.||.||||||" +
	"..........|______|.........." +
	"||||||.||.|______|.||.||||||" +
	"_____|.||.||||||||.||.|_____" +
	"_____|.||..........||.|_____" +
	"_____|.||.||||||||.||.|_____" +
	"||||||.||.||||||||.||.||||||" +
	"|............||............|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|...||................||...|" +
	"|||.||.||.||||||||.||.||.|||" +
	"|||.||.||.||||||||.||.||.|||" +
	"|......||....||....||......|" +
	"|.||||||||||.||.||||||||||.|" +
	"|.||||||||||.||.||||||||||.|" +
	"|..........................|" +
	"||||||||||||||||||||||||||||" +
	"____________________________" +
	"____________________________"

// ClassicPellets places dots ('.') and energizers ('o') using the same row order as ClassicBoard
const ClassicPellets = "" +
	"____________________________" +
	"____________________________" +
	"____________________________" +
	"||||||||||||||||||||||||||||" +
	"|............||............|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|o||||.|||||.||.|||||.||||o|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|..........................|" +
	"|.||||.||.||||||||.||.||||.|" +
	"|.||||.||.||||||||.||.||||.|" +
	"|......||....||....||......|" +
	"||||||.||||| || |||||.||||||" +
	"_____|.||||| || |||||.|_____" +
	"_____|.||          ||.|_____" +
	"_____|.|| |||--||| ||.|_____" +
	"||||||.|| |______| ||.||||||" +
	"      .   |______|   .      " +
	"||||||.|| |______| ||.||||||" +
	"_____|.|| |||||||| ||.|_____" +
	"_____|.||          ||.|_____" +
	"_____|.|| |||||||| ||.|_____" +
	"||||||.|| |||||||| ||.||||||" +
	"|............||............|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|.||||.|||||.||.|||||.||||.|" +
	"|o..||.......  .......||..o|" +
	"|||.||.||.||||||||.||.||.|||" +
	"|||.||.||.||||||||.||.||.|||" +
	"|......||....||....||......|" +
	"|.||||||||||.||.||||||||||.|" +
	"|.||||||||||.||.||||||||||.|" +
	"|..........................|" +
	"||||||||||||||||||||||||||||" +
	"____________________________" +
	"____________________________"
