package encoding

import "github.com/hctsai/dazi/internal/model"

// staticTable bundles encodings for the most common characters so hints
// work offline. Less common characters fall through to the cache and the
// remote dictionary.
var staticTable = map[rune]model.EncodingRecord{
	'的': {Zhuyin: "ㄉㄜ˙", Cangjie: "竹日弓", Boshiamy: "PI", Pinyin: "de"},
	'一': {Zhuyin: "ㄧ", Cangjie: "一", Boshiamy: "M", Pinyin: "yī"},
	'是': {Zhuyin: "ㄕˋ", Cangjie: "日一卜人", Boshiamy: "AMYO", Pinyin: "shì"},
	'不': {Zhuyin: "ㄅㄨˋ", Cangjie: "一火", Boshiamy: "MF", Pinyin: "bù"},
	'了': {Zhuyin: "ㄌㄜ˙", Cangjie: "弓弓", Boshiamy: "NN", Pinyin: "le"},
	'在': {Zhuyin: "ㄗㄞˋ", Cangjie: "大土", Boshiamy: "KG", Pinyin: "zài"},
	'人': {Zhuyin: "ㄖㄣˊ", Cangjie: "人", Boshiamy: "O", Pinyin: "rén"},
	'有': {Zhuyin: "ㄧㄡˇ", Cangjie: "大月", Boshiamy: "KB", Pinyin: "yǒu"},
	'我': {Zhuyin: "ㄨㄛˇ", Cangjie: "竹手戈", Boshiamy: "HQI", Pinyin: "wǒ"},
	'他': {Zhuyin: "ㄊㄚ", Cangjie: "人心", Boshiamy: "OP", Pinyin: "tā"},
	'這': {Zhuyin: "ㄓㄜˋ", Cangjie: "卜口一弓", Boshiamy: "YRMN", Pinyin: "zhè"},
	'個': {Zhuyin: "ㄍㄜˋ", Cangjie: "人口竹口", Boshiamy: "ORHR", Pinyin: "gè"},
	'們': {Zhuyin: "ㄇㄣ˙", Cangjie: "人日弓", Boshiamy: "OAN", Pinyin: "men"},
	'中': {Zhuyin: "ㄓㄨㄥ", Cangjie: "中", Boshiamy: "L", Pinyin: "zhōng"},
	'來': {Zhuyin: "ㄌㄞˊ", Cangjie: "木人人", Boshiamy: "DOO", Pinyin: "lái"},
	'上': {Zhuyin: "ㄕㄤˋ", Cangjie: "卜一", Boshiamy: "YM", Pinyin: "shàng"},
	'大': {Zhuyin: "ㄉㄚˋ", Cangjie: "大", Boshiamy: "K", Pinyin: "dà"},
	'為': {Zhuyin: "ㄨㄟˋ", Cangjie: "戈大弓火", Boshiamy: "IKNF", Pinyin: "wèi"},
	'和': {Zhuyin: "ㄏㄜˊ", Cangjie: "竹木口", Boshiamy: "HDR", Pinyin: "hé"},
	'國': {Zhuyin: "ㄍㄨㄛˊ", Cangjie: "田戈口一", Boshiamy: "WIRM", Pinyin: "guó"},
	'地': {Zhuyin: "ㄉㄧˋ", Cangjie: "土心木", Boshiamy: "GPD", Pinyin: "dì"},
	'到': {Zhuyin: "ㄉㄠˋ", Cangjie: "一土中弓", Boshiamy: "MGLN", Pinyin: "dào"},
	'以': {Zhuyin: "ㄧˇ", Cangjie: "女戈人", Boshiamy: "VIO", Pinyin: "yǐ"},
	'說': {Zhuyin: "ㄕㄨㄛ", Cangjie: "卜口金口", Boshiamy: "YRCR", Pinyin: "shuō"},
	'時': {Zhuyin: "ㄕˊ", Cangjie: "日土戈", Boshiamy: "AGI", Pinyin: "shí"},
	'要': {Zhuyin: "ㄧㄠˋ", Cangjie: "一女火", Boshiamy: "MVF", Pinyin: "yào"},
	'就': {Zhuyin: "ㄐㄧㄡˋ", Cangjie: "卜火大", Boshiamy: "YFK", Pinyin: "jiù"},
	'出': {Zhuyin: "ㄔㄨ", Cangjie: "山山", Boshiamy: "UU", Pinyin: "chū"},
	'會': {Zhuyin: "ㄏㄨㄟˋ", Cangjie: "人一日火", Boshiamy: "OMAF", Pinyin: "huì"},
	'可': {Zhuyin: "ㄎㄜˇ", Cangjie: "一弓口", Boshiamy: "MNR", Pinyin: "kě"},
	'也': {Zhuyin: "ㄧㄝˇ", Cangjie: "心木", Boshiamy: "PD", Pinyin: "yě"},
	'你': {Zhuyin: "ㄋㄧˇ", Cangjie: "人弓火", Boshiamy: "ONF", Pinyin: "nǐ"},
	'對': {Zhuyin: "ㄉㄨㄟˋ", Cangjie: "土口木戈", Boshiamy: "GRDI", Pinyin: "duì"},
	'生': {Zhuyin: "ㄕㄥ", Cangjie: "竹手一", Boshiamy: "HQM", Pinyin: "shēng"},
	'能': {Zhuyin: "ㄋㄥˊ", Cangjie: "戈月心心", Boshiamy: "IBPP", Pinyin: "néng"},
	'而': {Zhuyin: "ㄦˊ", Cangjie: "一月中中", Boshiamy: "MBLL", Pinyin: "ér"},
	'子': {Zhuyin: "ㄗˇ", Cangjie: "弓木", Boshiamy: "ND", Pinyin: "zǐ"},
	'那': {Zhuyin: "ㄋㄚˋ", Cangjie: "尸手中", Boshiamy: "SQL", Pinyin: "nà"},
	'得': {Zhuyin: "ㄉㄜˊ", Cangjie: "竹人日一", Boshiamy: "HOAM", Pinyin: "dé"},
	'於': {Zhuyin: "ㄩˊ", Cangjie: "卜尸人", Boshiamy: "YSO", Pinyin: "yú"},
	'著': {Zhuyin: "ㄓㄜ˙", Cangjie: "廿月十", Boshiamy: "TBJ", Pinyin: "zhe"},
	'下': {Zhuyin: "ㄒㄧㄚˋ", Cangjie: "一卜", Boshiamy: "MY", Pinyin: "xià"},
	'自': {Zhuyin: "ㄗˋ", Cangjie: "竹日山", Boshiamy: "HAU", Pinyin: "zì"},
	'之': {Zhuyin: "ㄓ", Cangjie: "戈弓人", Boshiamy: "INO", Pinyin: "zhī"},
	'年': {Zhuyin: "ㄋㄧㄢˊ", Cangjie: "人手", Boshiamy: "OQ", Pinyin: "nián"},
	'過': {Zhuyin: "ㄍㄨㄛˋ", Cangjie: "卜口月口", Boshiamy: "YRBR", Pinyin: "guò"},
	'發': {Zhuyin: "ㄈㄚ", Cangjie: "弓人弓水", Boshiamy: "NONE", Pinyin: "fā"},
	'後': {Zhuyin: "ㄏㄡˋ", Cangjie: "竹人戈女大", Boshiamy: "HOIVK", Pinyin: "hòu"},
	'作': {Zhuyin: "ㄗㄨㄛˋ", Cangjie: "人竹十", Boshiamy: "OHJ", Pinyin: "zuò"},
	'裡': {Zhuyin: "ㄌㄧˇ", Cangjie: "中田土", Boshiamy: "LWG", Pinyin: "lǐ"},
	'用': {Zhuyin: "ㄩㄥˋ", Cangjie: "月手", Boshiamy: "BQ", Pinyin: "yòng"},
	'道': {Zhuyin: "ㄉㄠˋ", Cangjie: "卜廿竹山", Boshiamy: "YTHU", Pinyin: "dào"},
	'行': {Zhuyin: "ㄒㄧㄥˊ", Cangjie: "竹人一一弓", Boshiamy: "HOMMN", Pinyin: "xíng"},
	'所': {Zhuyin: "ㄙㄨㄛˇ", Cangjie: "竹尸竹中", Boshiamy: "HSHL", Pinyin: "suǒ"},
	'然': {Zhuyin: "ㄖㄢˊ", Cangjie: "月大火", Boshiamy: "BKF", Pinyin: "rán"},
	'家': {Zhuyin: "ㄐㄧㄚ", Cangjie: "十一尸人", Boshiamy: "JMSO", Pinyin: "jiā"},
	'種': {Zhuyin: "ㄓㄨㄥˇ", Cangjie: "竹木竹十山", Boshiamy: "HDHJM", Pinyin: "zhǒng"},
	'事': {Zhuyin: "ㄕˋ", Cangjie: "十中中弓", Boshiamy: "JLLN", Pinyin: "shì"},
	'成': {Zhuyin: "ㄔㄥˊ", Cangjie: "戈竹尸", Boshiamy: "IHS", Pinyin: "chéng"},
	'方': {Zhuyin: "ㄈㄤ", Cangjie: "卜竹尸", Boshiamy: "YHS", Pinyin: "fāng"},
	'多': {Zhuyin: "ㄉㄨㄛ", Cangjie: "弓戈弓戈", Boshiamy: "NINI", Pinyin: "duō"},
	'經': {Zhuyin: "ㄐㄧㄥ", Cangjie: "女火一女一", Boshiamy: "VFMVM", Pinyin: "jīng"},
	'去': {Zhuyin: "ㄑㄩˋ", Cangjie: "土戈", Boshiamy: "GI", Pinyin: "qù"},
	'法': {Zhuyin: "ㄈㄚˇ", Cangjie: "水戈土", Boshiamy: "EIG", Pinyin: "fǎ"},
	'學': {Zhuyin: "ㄒㄩㄝˊ", Cangjie: "竹月弓木", Boshiamy: "HBND", Pinyin: "xué"},
	'如': {Zhuyin: "ㄖㄨˊ", Cangjie: "女口", Boshiamy: "VR", Pinyin: "rú"},
	'都': {Zhuyin: "ㄉㄡ", Cangjie: "十日弓中", Boshiamy: "JANL", Pinyin: "dōu"},
	'同': {Zhuyin: "ㄊㄨㄥˊ", Cangjie: "月一口", Boshiamy: "BMR", Pinyin: "tóng"},
	'現': {Zhuyin: "ㄒㄧㄢˋ", Cangjie: "一土月山山", Boshiamy: "MGBUU", Pinyin: "xiàn"},
	'當': {Zhuyin: "ㄉㄤ", Cangjie: "火月口田", Boshiamy: "FBRW", Pinyin: "dāng"},
	'沒': {Zhuyin: "ㄇㄟˊ", Cangjie: "水竹弓水", Boshiamy: "EHNE", Pinyin: "méi"},
	'動': {Zhuyin: "ㄉㄨㄥˋ", Cangjie: "竹田大尸", Boshiamy: "HWKS", Pinyin: "dòng"},
	'面': {Zhuyin: "ㄇㄧㄢˋ", Cangjie: "一田中中", Boshiamy: "MWLL", Pinyin: "miàn"},
	'起': {Zhuyin: "ㄑㄧˇ", Cangjie: "走戈尸", Boshiamy: "GIS", Pinyin: "qǐ"},
	'看': {Zhuyin: "ㄎㄢˋ", Cangjie: "竹手月山", Boshiamy: "HQBU", Pinyin: "kàn"},
	'定': {Zhuyin: "ㄉㄧㄥˋ", Cangjie: "十一卜一", Boshiamy: "JMYM", Pinyin: "dìng"},
	'天': {Zhuyin: "ㄊㄧㄢ", Cangjie: "一大", Boshiamy: "MK", Pinyin: "tiān"},
	'分': {Zhuyin: "ㄈㄣ", Cangjie: "金尸竹", Boshiamy: "CSH", Pinyin: "fēn"},
	'還': {Zhuyin: "ㄏㄞˊ", Cangjie: "卜田田月", Boshiamy: "YWWB", Pinyin: "hái"},
	'進': {Zhuyin: "ㄐㄧㄣˋ", Cangjie: "卜竹人土", Boshiamy: "YHOG", Pinyin: "jìn"},
	'好': {Zhuyin: "ㄏㄠˇ", Cangjie: "女弓木", Boshiamy: "VND", Pinyin: "hǎo"},
	'小': {Zhuyin: "ㄒㄧㄠˇ", Cangjie: "弓金", Boshiamy: "NC", Pinyin: "xiǎo"},
	'部': {Zhuyin: "ㄅㄨˋ", Cangjie: "卜口弓中", Boshiamy: "YRNL", Pinyin: "bù"},
	'其': {Zhuyin: "ㄑㄧˊ", Cangjie: "廿一金", Boshiamy: "TMC", Pinyin: "qí"},
	'些': {Zhuyin: "ㄒㄧㄝ", Cangjie: "卜一心", Boshiamy: "YMP", Pinyin: "xiē"},
	'主': {Zhuyin: "ㄓㄨˇ", Cangjie: "卜土", Boshiamy: "YG", Pinyin: "zhǔ"},
	'樣': {Zhuyin: "ㄧㄤˋ", Cangjie: "木廿土水", Boshiamy: "DTGE", Pinyin: "yàng"},
	'理': {Zhuyin: "ㄌㄧˇ", Cangjie: "一土田土", Boshiamy: "MGWG", Pinyin: "lǐ"},
	'心': {Zhuyin: "ㄒㄧㄣ", Cangjie: "心", Boshiamy: "P", Pinyin: "xīn"},
	'她': {Zhuyin: "ㄊㄚ", Cangjie: "女心", Boshiamy: "VP", Pinyin: "tā"},
	'本': {Zhuyin: "ㄅㄣˇ", Cangjie: "木一", Boshiamy: "DM", Pinyin: "běn"},
	'前': {Zhuyin: "ㄑㄧㄢˊ", Cangjie: "竹口月中弓", Boshiamy: "HRBLN", Pinyin: "qián"},
	'開': {Zhuyin: "ㄎㄞ", Cangjie: "日弓廿", Boshiamy: "ANT", Pinyin: "kāi"},
	'但': {Zhuyin: "ㄉㄢˋ", Cangjie: "人日一", Boshiamy: "OAM", Pinyin: "dàn"},
	'因': {Zhuyin: "ㄧㄣ", Cangjie: "田大", Boshiamy: "WK", Pinyin: "yīn"},
	'只': {Zhuyin: "ㄓˇ", Cangjie: "口心", Boshiamy: "RP", Pinyin: "zhǐ"},
	'從': {Zhuyin: "ㄘㄨㄥˊ", Cangjie: "竹人人人", Boshiamy: "HOOO", Pinyin: "cóng"},
	'想': {Zhuyin: "ㄒㄧㄤˇ", Cangjie: "木月心", Boshiamy: "DBP", Pinyin: "xiǎng"},
	'實': {Zhuyin: "ㄕˊ", Cangjie: "十月山金", Boshiamy: "JBUC", Pinyin: "shí"},
	'張': {Zhuyin: "ㄓㄤ", Cangjie: "弓尸一", Boshiamy: "NSM", Pinyin: "zhāng"},
	'庭': {Zhuyin: "ㄊㄧㄥˊ", Cangjie: "戈弓大土", Boshiamy: "INKG", Pinyin: "tíng"},
	'門': {Zhuyin: "ㄇㄣˊ", Cangjie: "日弓", Boshiamy: "AN", Pinyin: "mén"},
	'禁': {Zhuyin: "ㄐㄧㄣˋ", Cangjie: "木木戈", Boshiamy: "DDI", Pinyin: "jìn"},
	'止': {Zhuyin: "ㄓˇ", Cangjie: "卜中一", Boshiamy: "YLM", Pinyin: "zhǐ"},
	'兒': {Zhuyin: "ㄦˊ", Cangjie: "竹山山", Boshiamy: "HUU", Pinyin: "ér"},
	'女': {Zhuyin: "ㄋㄩˇ", Cangjie: "女", Boshiamy: "V", Pinyin: "nǚ"},
	'喊': {Zhuyin: "ㄏㄢˇ", Cangjie: "口戈戈口", Boshiamy: "RIIR", Pinyin: "hǎn"},
	'媽': {Zhuyin: "ㄇㄚ", Cangjie: "女十田火", Boshiamy: "VJWF", Pinyin: "mā"},
	'遭': {Zhuyin: "ㄗㄠ", Cangjie: "卜十田日", Boshiamy: "YJWA", Pinyin: "zāo"},
	'爆': {Zhuyin: "ㄅㄠˋ", Cangjie: "火日廿水", Boshiamy: "FATE", Pinyin: "bào"},
	'料': {Zhuyin: "ㄌㄧㄠˋ", Cangjie: "火木十", Boshiamy: "FDJ", Pinyin: "liào"},
	'被': {Zhuyin: "ㄅㄟˋ", Cangjie: "中竹金水", Boshiamy: "LHCE", Pinyin: "bèi"},
	'搭': {Zhuyin: "ㄉㄚ", Cangjie: "手廿人口", Boshiamy: "QTOR", Pinyin: "dā"},
	'訕': {Zhuyin: "ㄕㄢˋ", Cangjie: "卜口山山", Boshiamy: "YRUU", Pinyin: "shàn"},
	'尊': {Zhuyin: "ㄗㄨㄣ", Cangjie: "廿田木戈", Boshiamy: "TWDI", Pinyin: "zūn"},
	'洩': {Zhuyin: "ㄒㄧㄝˋ", Cangjie: "水女心水", Boshiamy: "EVPE", Pinyin: "xiè"},
	'真': {Zhuyin: "ㄓㄣ", Cangjie: "十月金", Boshiamy: "JBC", Pinyin: "zhēn"},
	'原': {Zhuyin: "ㄩㄢˊ", Cangjie: "一竹日火", Boshiamy: "MHAF", Pinyin: "yuán"},
	'台': {Zhuyin: "ㄊㄞˊ", Cangjie: "戈口", Boshiamy: "IR", Pinyin: "tái"},
	'灣': {Zhuyin: "ㄨㄢ", Cangjie: "水女金女", Boshiamy: "EVCV", Pinyin: "wān"},
}
