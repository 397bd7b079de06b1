package word

// builtinWords is the server's default word pool (~260 entries), grounded
// on the teacher's file-backed drawability word list
// (skribbl-word-bank/skribbl_words_drawability_en.txt) but inlined as a Go
// literal instead of a runtime file read — see DESIGN.md for why.
var builtinWords = []string{
	"airplane", "alarm clock", "anchor", "ant", "apple", "arm", "arrow",
	"axe", "backpack", "balloon", "banana", "baseball", "basket",
	"basketball", "bat", "bathtub", "beach", "bear", "bed", "bee",
	"bell", "belt", "bicycle", "binoculars", "bird", "birthday cake",
	"boat", "bone", "book", "boomerang", "boot", "bottle", "bow",
	"bowl", "box", "bracelet", "brain", "bread", "bridge", "broom",
	"brush", "bucket", "bulb", "bus", "butterfly", "cactus", "camera",
	"candle", "candy cane", "cannon", "canoe", "car", "carrot",
	"castle", "cat", "caterpillar", "chair", "cheese", "chicken",
	"chimney", "clock", "cloud", "clover", "coin", "comb", "comet",
	"compass", "cow", "crab", "crayon", "crown", "cup", "cupcake",
	"curtain", "dice", "dinosaur", "dog", "dolphin", "door", "dragon",
	"dress", "drum", "duck", "ear", "egg", "elephant", "envelope",
	"eye", "eyeglasses", "fan", "feather", "fence", "fire", "fish",
	"fishing rod", "flag", "flashlight", "flower", "foot", "fork",
	"fountain", "fox", "frog", "frying pan", "garden", "ghost",
	"giraffe", "glass", "glasses", "globe", "glove", "goat", "grapes",
	"guitar", "hammer", "hand", "hat", "headphones", "heart",
	"helicopter", "helmet", "hippo", "horse", "hot dog", "house",
	"hourglass", "ice cream", "igloo", "iron", "island", "jacket",
	"jellyfish", "kangaroo", "key", "kite", "knife", "ladder",
	"ladybug", "lamp", "leaf", "leg", "lemon", "light bulb",
	"lighthouse", "lion", "lizard", "lock", "magnet", "map", "maze",
	"microphone", "microscope", "mirror", "mitten", "money", "monkey",
	"moon", "mountain", "mouse", "mouth", "mushroom", "nail", "nest",
	"nose", "notebook", "octopus", "onion", "owl", "paintbrush",
	"palm tree", "pan", "panda", "paper", "parachute", "parrot",
	"pencil", "penguin", "piano", "pig", "pillow", "pineapple",
	"pizza", "plane", "planet", "plate", "pumpkin", "rabbit",
	"rainbow", "rain cloud", "rake", "ring", "robot", "rocket",
	"rose", "ruler", "saddle", "sailboat", "sandwich", "saw",
	"scarf", "scissors", "shark", "sheep", "shell", "ship", "shoe",
	"shovel", "skateboard", "skeleton", "ski", "skull", "snail",
	"snake", "snowflake", "snowman", "sock", "spider", "spoon",
	"star", "strawberry", "sun", "sunflower", "swan", "sword",
	"table", "teapot", "telephone", "telescope", "tent", "tiger",
	"toaster", "tomato", "tooth", "toothbrush", "tornado", "tractor",
	"train", "tree", "triangle", "trophy", "truck", "trumpet",
	"turtle", "umbrella", "unicorn", "vase", "violin", "volcano",
	"wagon", "watch", "waterfall", "watermelon", "whale", "wheel",
	"windmill", "window", "wolf", "wristwatch", "zebra", "zipper",
}
